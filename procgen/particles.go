package procgen

// Particle field defaults
const (
	DefaultParticleCount = 28

	ParticleSizeMin    = 1.0
	ParticleSizeMax    = 3.2
	ParticleOpacityMin = 0.15
	ParticleOpacityMax = 0.5
	ParticlePeriodMin  = 6.0
	ParticlePeriodMax  = 16.0
)

// Particle is one floating light dot; X and Y are percentages of the container
type Particle struct {
	ID        int
	X, Y      float64
	Size      float64
	Opacity   float64
	PeriodSec float64
}

// Particles generates count particles, negative count yields an empty field
func Particles(src Source, count int) []Particle {
	if count < 0 {
		count = 0
	}
	field := make([]Particle, count)
	for i := range field {
		field[i] = Particle{
			ID:        i,
			X:         uniform(src, 0, 100),
			Y:         uniform(src, 0, 100),
			Size:      uniform(src, ParticleSizeMin, ParticleSizeMax),
			Opacity:   uniform(src, ParticleOpacityMin, ParticleOpacityMax),
			PeriodSec: uniform(src, ParticlePeriodMin, ParticlePeriodMax),
		}
	}
	return field
}
