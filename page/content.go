package page

// Neon palette tokens, hex strings resolved by the render layer
const (
	TintCyan     = "#00F5FF"
	TintPurple   = "#7A2CFF"
	TintMagenta  = "#FF2EEA"
	TintHoloBlue = "#3AA0FF"
)

// Integration is an orbit node label and its tint
type Integration struct {
	Name string
	Tint string
}

// Integrations orbit the core in this order
var Integrations = []Integration{
	{"Slack", TintCyan},
	{"GitHub", TintPurple},
	{"Jira", TintMagenta},
	{"AWS", TintHoloBlue},
	{"GCP", TintCyan},
	{"Okta", TintPurple},
	{"Datadog", TintMagenta},
	{"Splunk", TintHoloBlue},
}

// Testimonial is one carousel entry
type Testimonial struct {
	Quote string
	Name  string
	Org   string
}

// Testimonials rotate in the feedback carousel
var Testimonials = []Testimonial{
	{
		Quote: "NeonOps gave us a single command surface for detection → decision → execution. We cut MTTR without adding headcount.",
		Name:  "SRE Lead",
		Org:   "Global FinTech",
	},
	{
		Quote: "The policy engine is the difference. We finally have automation that's governed, audited, and reversible.",
		Name:  "Platform Director",
		Org:   "Enterprise SaaS",
	},
	{
		Quote: "Observability is everywhere now. NeonOps is the first product that feels like an operating system, not a dashboard.",
		Name:  "Head of Reliability",
		Org:   "Cloud Infrastructure Co.",
	},
	{
		Quote: "We shipped faster because incident response became a workflow, not a war room. The interface is shockingly clear.",
		Name:  "VP Engineering",
		Org:   "Consumer Platform",
	},
}

// KPISpec describes one hero metric, rendered as the count-up value followed by Suffix
type KPISpec struct {
	Title  string
	Suffix string
	Accent string
}

// KPISpecs pair with config counter targets by index
var KPISpecs = []KPISpec{
	{Title: "Uptime", Suffix: ".99%", Accent: TintCyan},
	{Title: "MTTR", Suffix: "m", Accent: TintMagenta},
	{Title: "Active Signals", Suffix: "k", Accent: TintPurple},
}

// ConsoleTabs are the demo console sections
var ConsoleTabs = []string{"Overview", "Pipelines", "Alerts", "Compliance"}

// StreamEvent is a static console log line
type StreamEvent struct {
	Time   string
	Event  string
	Status string
}

// EventStream is the console log
var EventStream = []StreamEvent{
	{"12:04", "Signal ingested", "OK"},
	{"12:05", "Correlation updated", "OK"},
	{"12:06", "Policy executed", "OK"},
	{"12:07", "Auto-remediation", "OK"},
	{"12:08", "Audit logged", "OK"},
}

// ComplianceItem is one compliance snapshot cell
type ComplianceItem struct {
	Key   string
	Value string
}

// Compliance is the console snapshot grid
var Compliance = []ComplianceItem{
	{"SOC 2", "Ready"},
	{"SSO", "Enabled"},
	{"Audit", "Live"},
}

// PipelineStep is one stage of the signal-to-execution workflow
type PipelineStep struct {
	Title string
	Desc  string
}

// PipelineSteps run left to right, joined by animated connectors
var PipelineSteps = []PipelineStep{
	{"Ingest signals", "Metrics, logs, traces, events unified."},
	{"Normalize + correlate", "Context joins noise into meaning."},
	{"Automate decisions", "Policies turn intent into action."},
	{"Execute + learn", "Runbooks, rollback, feedback loops."},
}

// Badge states
const (
	BadgeOK   = "ok"
	BadgeWarn = "warn"
)

// Badge is a live status pill
type Badge struct {
	Label string
	State string
}
