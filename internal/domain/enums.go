package domain

// ActivityType is the kind of logged activity.
type ActivityType string

const (
	ActivityTypeCone   ActivityType = "CONE"
	ActivityTypeJoint  ActivityType = "JOINT"
	ActivityTypeBowl   ActivityType = "BOWL"
	ActivityTypeCustom ActivityType = "CUSTOM"
)

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityTypeCone, ActivityTypeJoint, ActivityTypeBowl, ActivityTypeCustom:
		return true
	}
	return false
}

// EntryKind is the kind of stash ledger entry.
type EntryKind string

const (
	EntryKindAdd     EntryKind = "ADD"
	EntryKindConsume EntryKind = "CONSUME"
	EntryKindAdjust  EntryKind = "ADJUST"
	EntryKindRemove  EntryKind = "REMOVE"
	EntryKindReset   EntryKind = "RESET"
)

func (k EntryKind) String() string { return string(k) }

func (k EntryKind) IsValid() bool {
	switch k {
	case EntryKindAdd, EntryKindConsume, EntryKindAdjust, EntryKindRemove, EntryKindReset:
		return true
	}
	return false
}

// StashTimePeriod selects a reporting window relative to now.
type StashTimePeriod string

const (
	PeriodThisSesh StashTimePeriod = "THIS_SESH"
	PeriodHour     StashTimePeriod = "HOUR"
	PeriodTwelveH  StashTimePeriod = "TWELVE_H"
	PeriodToday    StashTimePeriod = "TODAY"
	PeriodWeek     StashTimePeriod = "WEEK"
	PeriodMonth    StashTimePeriod = "MONTH"
	PeriodYear     StashTimePeriod = "YEAR"
)

func (p StashTimePeriod) String() string { return string(p) }

func (p StashTimePeriod) IsValid() bool {
	switch p {
	case PeriodThisSesh, PeriodHour, PeriodTwelveH, PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// GoalScopeKind is the temporal boundary a goal measures progress in.
type GoalScopeKind string

const (
	GoalScopeCurrentSession GoalScopeKind = "CURRENT_SESSION"
	GoalScopeAllSessions    GoalScopeKind = "ALL_SESSIONS"
	GoalScopeTimeBased      GoalScopeKind = "TIME_BASED"
)

func (k GoalScopeKind) String() string { return string(k) }

func (k GoalScopeKind) IsValid() bool {
	switch k {
	case GoalScopeCurrentSession, GoalScopeAllSessions, GoalScopeTimeBased:
		return true
	}
	return false
}

// WindowKind distinguishes sliding from anchored goal windows.
type WindowKind string

const (
	WindowKindRolling     WindowKind = "ROLLING"
	WindowKindFixedPeriod WindowKind = "FIXED_PERIOD"
)

func (k WindowKind) String() string { return string(k) }

func (k WindowKind) IsValid() bool {
	switch k {
	case WindowKindRolling, WindowKindFixedPeriod:
		return true
	}
	return false
}

// TimeUnit is the unit of a goal window duration.
type TimeUnit string

const (
	TimeUnitMinutes TimeUnit = "MINUTES"
	TimeUnitHours   TimeUnit = "HOURS"
	TimeUnitDays    TimeUnit = "DAYS"
	TimeUnitWeeks   TimeUnit = "WEEKS"
)

func (u TimeUnit) String() string { return string(u) }

func (u TimeUnit) IsValid() bool {
	switch u {
	case TimeUnitMinutes, TimeUnitHours, TimeUnitDays, TimeUnitWeeks:
		return true
	}
	return false
}

// GoalState is derived from a goal's flags.
type GoalState string

const (
	GoalStateActive    GoalState = "ACTIVE"
	GoalStatePaused    GoalState = "PAUSED"
	GoalStateCompleted GoalState = "COMPLETED"
)

func (s GoalState) String() string { return string(s) }

// GoalEventKind is the kind of notification emitted by goal progress.
type GoalEventKind string

const (
	GoalEventThresholdCrossed GoalEventKind = "THRESHOLD_CROSSED"
	GoalEventCompleted        GoalEventKind = "COMPLETED"
)

func (k GoalEventKind) String() string { return string(k) }

func (k GoalEventKind) IsValid() bool {
	switch k {
	case GoalEventThresholdCrossed, GoalEventCompleted:
		return true
	}
	return false
}
