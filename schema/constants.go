package schema

// Custom string types for type safety.
type (
	// EventKind represents the interaction type or metric family of an event.
	EventKind string

	// Domain represents the behavioral data family under analysis.
	Domain string

	// AnomalyFlag is a discrete named signal raised by a deviation rule.
	AnomalyFlag string

	// Status is the coarse daily judgment.
	Status string

	// Confidence qualifies how much the verdict should be trusted.
	Confidence string

	// TagKind is an independent day-level context label.
	TagKind string

	// Density grades how packed a day's schedule is.
	Density string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// DateLayout is the canonical ISO date key used across the pipeline.
const DateLayout = "2006-01-02"

// All event kinds supported.
const (
	KindIncoming EventKind = "incoming" // default for unrecognized call types
	KindOutgoing EventKind = "outgoing"
	KindMissed   EventKind = "missed" // null interaction: counted, excluded from durations
	KindSteps    EventKind = "steps"
	KindActive   EventKind = "active_minutes"
	KindSleep    EventKind = "sleep_minutes"
	KindScreen   EventKind = "screen_minutes"
)

// All analysis domains supported.
const (
	CallsDomain   Domain = "calls" // default
	FitnessDomain Domain = "fitness"
)

// Anomaly flag taxonomy. Flags carry no payload beyond their kind.
const (
	FlagFrequencyDrop     AnomalyFlag = "frequency_drop"
	FlagShortenedDuration AnomalyFlag = "shortened_duration"
	FlagNoActivity        AnomalyFlag = "no_activity"
	FlagEnergyDecline     AnomalyFlag = "energy_decline"
	FlagEnergySurge       AnomalyFlag = "energy_surge"
	FlagSleepLoss         AnomalyFlag = "sleep_loss"
	FlagSleepGain         AnomalyFlag = "sleep_gain"
)

// All statuses supported.
const (
	StatusInsufficientData Status = "Insufficient Data"
	StatusNormal           Status = "Normal"
	StatusSlightlyOff      Status = "Slightly Off"
	StatusNeedsAttention   Status = "Needs Attention"
	StatusEnergetic        Status = "Energetic"
)

// All confidence levels supported.
const (
	LowConfidence    Confidence = "Low"
	MediumConfidence Confidence = "Medium"
	HighConfidence   Confidence = "High"
)

// All context tags supported.
const (
	TagTravel     TagKind = "Travel"
	TagHighStakes TagKind = "High Stakes"
	TagHoliday    TagKind = "Holiday"
	TagPersonal   TagKind = "Personal"
)

// All schedule densities supported.
const (
	LowDensity    Density = "Low"
	MediumDensity Density = "Medium"
	HighDensity   Density = "High"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDomains lists all valid analysis domains.
var ValidDomains = map[Domain]struct{}{
	CallsDomain:   {},
	FitnessDomain: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid run store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// NullInteractionKinds are kinds that count as presence but not as engagement;
// they are excluded from duration averages.
var NullInteractionKinds = map[EventKind]struct{}{
	KindMissed: {},
}
