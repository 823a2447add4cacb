package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName              = "Age Calculator"
	AppID                = "com.github.tartampluch.age-calculator"
	CLIName              = "agecalc"
	KeyringService       = "com.github.tartampluch.age-calculator"
	KeyringLastInputUser = "last-input"
	LogFileName          = "app.log"
	PrefsFileName        = "preferences.json"
	PrefsFileType        = "json"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs, preferences and exported files.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagNow          = "now"
	FlagPrefs        = "prefs"
	FlagDay          = "day"
	FlagMonth        = "month"
	FlagYear         = "year"
	FlagDate         = "date"
	FlagFormat       = "format"
	FlagOutput       = "output"
	FlagName         = "name"
	FlagLast         = "last"
	FlagMetrics      = "metrics"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging"
	FlagDescLang     = "Language used for output (en, fr)"
	FlagDescNow      = "Reference date used as today (YYYY-MM-DD)"
	FlagDescPrefs    = "Path to the preferences file"
	FlagDescDay      = "Day of birth (1-31)"
	FlagDescMonth    = "Month of birth (1-12)"
	FlagDescYear     = "Year of birth"
	FlagDescDate     = "Birth date as YYYY-MM-DD (overrides --day/--month/--year)"
	FlagDescOutput   = "Output file (defaults to a name derived from the format)"
	FlagDescName     = "Display name written to the vCard"
	FlagDescLast     = "Use the remembered birth date"
	FlagDescMetrics  = "Write calculation metrics to stderr in Prometheus text format"
	MsgVersionOutput = "%s version %s (%s/%s)\n"

	FlagDescCalcFormat   = "Output format (text, json)"
	FlagDescExportFormat = "Export format (text, json, ics, vcard); defaults to the output extension, then the share_format preference"

	CmdCalc          = "calc"
	CmdValidate      = "validate"
	CmdExport        = "export"
	CmdImport        = "import <file.vcf>"
	CmdPrefs         = "prefs"
	CmdPrefsShow     = "show"
	CmdPrefsSet      = "set <key> <value>"
	CmdPrefsReset    = "reset"
	CmdVersion       = "version"
	CmdDescRoot      = "Calculate your exact age and a few fun facts about it"
	CmdDescCalc      = "Calculate the age for a birth date"
	CmdDescValidate  = "Check a birth date without calculating"
	CmdDescExport    = "Write the calculation as text, JSON, iCalendar or vCard"
	CmdDescImport    = "Calculate the age from the first birthday found in a vCard file"
	CmdDescPrefs     = "Show or change preferences"
	CmdDescPrefsShow = "Print every preference"
	CmdDescPrefsSet  = "Change one preference"
	CmdDescPrefsRst  = "Restore the default preferences"
	CmdDescVersion   = "Print the version"
	StdoutPath       = "-"
	FormatSetting    = "%s = %v\n"
	FormatListItem   = "  • %s\n"
	FormatStatLine   = "  %s: %s\n"
	FormatMilestone  = "  • %s (%s)\n"
	FormatSection    = "\n%s\n"
)

// -----------------------------------------------------------------------------
// Domain Bounds & Constants
// -----------------------------------------------------------------------------

const (
	MinBirthYear = 1900
	MaxAgeYears  = 150
	MaxDayValue  = 31
	MonthsInYear = 12

	// Averages used for derived counters.
	AverageHeartRate        = 80 // beats per minute
	AverageBreathsPerMinute = 16

	// ApproxDaysPerYear is used for the simplified milestone estimate.
	ApproxDaysPerYear = 365

	// CountdownWindowDays bounds the "birthday soon" fun fact.
	CountdownWindowDays = 30

	// DefaultLeapYear is the fallback year for vCard dates like --02-29.
	DefaultLeapYear = 2000

	HistoryFirstYear = 1990
	HistoryLastYear  = 2023
)

// MajorMilestones are the round ages celebrated as "major".
var MajorMilestones = []int{25, 50, 75, 100}

// CelebrationAges trigger a celebration in the GUI in addition to every decade.
var CelebrationAges = []int{18, 21, 25, 30}

// -----------------------------------------------------------------------------
// Performance Monitoring
// -----------------------------------------------------------------------------

const (
	SlowCalculationThreshold  = 10 * time.Millisecond
	AverageCalculationTarget  = 5 * time.Millisecond
	CalculationWindowSize     = 100
	MetricsNamespace          = "agecalc"
	MetricCalculationsTotal   = "calculations_total"
	MetricCalculationDuration = "calculation_duration_seconds"
	MetricSlowCalculations    = "slow_calculations_total"
	MetricLabelOperation      = "operation"
	OpReport                  = "report"
	OpValidate                = "validate"
	RecommendOptimizeCalc     = "Optimize age calculation algorithms"
	RecommendSlowCalc         = "Investigate slow calculations"
	HelpCalculationsTotal     = "Number of calculations performed."
	HelpCalculationDuration   = "Duration of calculations in seconds."
	HelpSlowCalculations      = "Number of calculations slower than the warning threshold."
)

// CalculationBuckets covers sub-millisecond to slow calculations.
var CalculationBuckets = []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05}

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 520
	MainWindowHeight    = 640
	SettingsWindowWidth = 460
	LayoutColumnsDouble = 2

	// AutoCalcYearDigits is the year length that triggers calculate-while-typing.
	AutoCalcYearDigits = 4
	AnimationDuration  = 600 * time.Millisecond

	// Preference Keys (shared by the fyne store and the preferences file)
	PrefTheme             = "theme"
	PrefInputMethod       = "input_method"
	PrefDateFormat        = "date_format"
	PrefLanguage          = "language"
	PrefShowNotifications = "show_notifications"
	PrefShowAnimations    = "show_animations"
	PrefAutoCalculate     = "auto_calculate"
	PrefShowFunFacts      = "show_fun_facts"
	PrefShowPlanetaryAges = "show_planetary_ages"
	PrefShowStatistics    = "show_statistics"
	PrefRememberLastInput = "remember_last_input"
	PrefShareFormat       = "share_format"
	PrefAnnounceResults   = "accessibility.announce_results"
	PrefFocusManagement   = "accessibility.focus_management"
	PrefHighContrast      = "accessibility.high_contrast"
	PrefLastRun           = "last_run_version"

	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"

	InputManual = "manual"
	InputPicker = "picker"

	DateFormatDMY = "DD/MM/YYYY"
	DateFormatMDY = "MM/DD/YYYY"
	DateFormatYMD = "YYYY-MM-DD"

	ShareText  = "text"
	ShareJSON  = "json"
	ShareICS   = "ics"
	ShareVCard = "vcard"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// DateFormatLayouts maps the user-facing date format preference to Go layouts.
var DateFormatLayouts = map[string]string{
	DateFormatDMY: "02/01/2006",
	DateFormatMDY: "01/02/2006",
	DateFormatYMD: "2006-01-02",
}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Window & Form
	TKeyWinTitle       = "win_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyLblDay         = "lbl_day"
	TKeyLblMonth       = "lbl_month"
	TKeyLblYear        = "lbl_year"
	TKeyBtnCalculate   = "btn_calculate"
	TKeyBtnSettings    = "btn_settings"
	TKeyBtnShare       = "btn_share"
	TKeyBtnExport      = "btn_export"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyBtnReset       = "btn_reset"
	TKeyLblFooter      = "lbl_footer"
	TKeyLblAge         = "lbl_age" // Requires Years, Months, Days
	TKeyLblBornOn      = "lbl_born_on" // Requires Date, Weekday
	TKeyLblStats       = "lbl_stats"
	TKeyLblPlanets     = "lbl_planets"
	TKeyLblMilestones  = "lbl_milestones"
	TKeyLblFacts       = "lbl_facts"
	TKeyLblHistory     = "lbl_history"
	TKeyLblNoResult    = "lbl_no_result"
	TKeyLblDaysLeft    = "lbl_days_left" // Requires Days
	TKeyLblValid       = "lbl_valid"
	TKeyLblLanguage    = "lbl_language"
	TKeyLblTheme       = "lbl_theme"
	TKeyLblDateFormat  = "lbl_date_format"
	TKeyLblShareFormat = "lbl_share_format"
	TKeyLblDisplay     = "lbl_display"
	TKeyLblGeneral     = "lbl_general"
	TKeyLblA11y        = "lbl_accessibility"
	TKeyLblShowFacts   = "lbl_show_facts"
	TKeyLblShowPlanets = "lbl_show_planets"
	TKeyLblShowStats   = "lbl_show_stats"
	TKeyLblShowNotif   = "lbl_show_notifications"
	TKeyLblAnimations  = "lbl_show_animations"
	TKeyLblAutoCalc    = "lbl_auto_calculate"
	TKeyLblRemember    = "lbl_remember_input"
	TKeyLblAnnounce    = "lbl_announce_results"
	TKeyLblContrast    = "lbl_high_contrast"
	TKeyLblFocus       = "lbl_focus_management"
	TKeyLblInputMethod = "lbl_input_method"
	TKeyInputManual    = "input_manual"
	TKeyInputPicker    = "input_picker"
	TKeyBtnPickDate    = "btn_pick_date"
	TKeyNotifSaved     = "notif_saved"
	TKeyThemeAuto      = "theme_auto"
	TKeyThemeLight     = "theme_light"
	TKeyThemeDark      = "theme_dark"
	TKeyShareText      = "share_text" // Requires Years, Months, Days
	TKeyNotifCopied    = "notif_copied"
	TKeyNotifExported  = "notif_exported" // Requires File
	TKeyNotifCelebrate = "notif_celebrate" // Requires Years
	TKeyNotifError     = "notif_error"
	TKeyNotifImported  = "notif_imported" // Requires File
	TKeyBtnImport      = "btn_import"
	TKeyEventBirthday  = "event_birthday"

	// Validation (Rule identifiers double as translation keys)
	TKeyErrDayNotNumber   = "err_day_not_number"
	TKeyErrMonthNotNumber = "err_month_not_number"
	TKeyErrYearNotNumber  = "err_year_not_number"
	TKeyErrYearTooEarly   = "err_year_too_early"
	TKeyErrYearFuture     = "err_year_future"
	TKeyErrMonthRange     = "err_month_range"
	TKeyErrDayRange       = "err_day_range"
	TKeyErrDayInMonth     = "err_day_in_month" // Requires Month, Year, Days
	TKeyErrDateFuture     = "err_date_future"
	TKeyErrAgeCeiling     = "err_age_ceiling"

	// Derived statistics
	TKeyStatTotalDays  = "stat_total_days"
	TKeyStatTotalWeeks = "stat_total_weeks"
	TKeyStatTotalHours = "stat_total_hours"
	TKeyStatHeartbeats = "stat_heartbeats"
	TKeyStatBreaths    = "stat_breaths"
	TKeyStatBirthday   = "stat_days_to_birthday"

	// Milestones
	TKeyMilestoneBirthday = "milestone_birthday" // Requires Age, Ordinal
	TKeyMilestoneDecade   = "milestone_decade"   // Requires Age
	TKeyMilestoneMajor    = "milestone_major"    // Requires Age

	// Fun facts
	TKeyFactBaby          = "fact_bracket_baby"
	TKeyFactEarly         = "fact_bracket_early"
	TKeyFactChild         = "fact_bracket_child"
	TKeyFactTeen          = "fact_bracket_teen"
	TKeyFactTwenties      = "fact_bracket_twenties"
	TKeyFactThirties      = "fact_bracket_thirties"
	TKeyFactForties       = "fact_bracket_forties"
	TKeyFactFifties       = "fact_bracket_fifties"
	TKeyFactSixties       = "fact_bracket_sixties"
	TKeyFactSenior        = "fact_bracket_senior"
	TKeyFactDecade        = "fact_decade"   // Requires Years
	TKeyFactWeekday       = "fact_weekday"  // Requires Weekday
	TKeyFactWeekend       = "fact_weekend"
	TKeyFactSeason        = "fact_season" // Requires Season
	TKeyFactZodiac        = "fact_zodiac" // Requires Sign
	TKeyFactBirthdayToday = "fact_birthday_today"
	TKeyFactBirthdayTmrw  = "fact_birthday_tomorrow"
	TKeyFactBirthdaySoon  = "fact_birthday_soon" // Requires Days
	TKeyHistoryNone       = "history_none"

	// Prefixes for name tables (suffix is the lowercase English name)
	TKeyPrefixPlanet  = "planet_"
	TKeyPrefixSeason  = "season_"
	TKeyPrefixZodiac  = "zodiac_"
	TKeyPrefixWeekday = "weekday_"
)

// -----------------------------------------------------------------------------
// Display Formats & Icons
// -----------------------------------------------------------------------------

const (
	DateFormatLong  = "Monday, January 2, 2006"
	DateFormatISO   = "2006-01-02"
	DateFormatBasic = "20060102"

	IconCalendar = "calendar"
	IconChart    = "chart"
	IconClock    = "clock"
	IconHeart    = "heart"
	IconLungs    = "lungs"
	IconCake     = "cake"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Age Calculator//Share//EN"
	ICalCalName   = "Age Calculator"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalDomain    = "agecalc"
	ICalRRuleYear = "FREQ=YEARLY"
	ICalCatBday   = "BIRTHDAY"
	ICalCatMile   = "MILESTONE"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRRule       = "RRULE"
	PropDescription = "DESCRIPTION"
	PropCategories  = "CATEGORIES"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardVersion = "4.0"
	VCardBDAY    = "BDAY"
	VCardFN      = "FN"
	VCardN       = "N"
	VCardNote    = "NOTE"
	VCardVer     = "VERSION"

	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	FormatUID = "%s@%s"

	// Export file names & extensions
	ExportJSONFile  = "age-calculation.json"
	ExportICSFile   = "age-calculation.ics"
	ExportVCardFile = "age-calculation.vcf"
	ExportTextFile  = "age-calculation.txt"
	ExtTXT          = ".txt"
	ExtJSON         = ".json"
	ExtICS          = ".ics"
	ExtVCF          = ".vcf"
	ExtVCard        = ".vcard"
	JSONIndent      = "  "
	DefaultCardName = "Me"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrFutureBirthDate = "birth date cannot be in the future"
	ErrDateParse       = "unable to parse date"
	ErrNoBirthday      = "no contact with a birthday found"
	ErrYearUnknown     = "birthday has no year"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrVCardEncode     = "failed to encode vCard"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrJSONEncode      = "failed to encode JSON export"
	ErrInvalidPrefs    = "invalid preferences"
	ErrUnknownPref     = "unknown preference key"
	ErrPrefsLoad       = "failed to load preferences"
	ErrPrefsSave       = "failed to save preferences"
	ErrKeyring         = "keyring access failed"
	ErrNoLastInput     = "no remembered birth date"
	ErrUnknownFormat   = "unsupported format"
	ErrEnvParse        = "failed to parse environment"
	ErrInvalidInput    = "invalid birth date"
	ErrMissingDate     = "birth date required: use --date, --day/--month/--year or --last"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrConfigDir       = "could not determine user config dir"
	ErrCreateDir       = "could not create app directory"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrWriteFile       = "failed to write file"
	ErrOpenFile        = "failed to open file"
	ErrNoReport        = "nothing calculated yet"
	ErrMetricsGather   = "failed to gather metrics"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults (English text used when no translation is available)
// -----------------------------------------------------------------------------

const (
	MsgDayNotNumber   = "Day must be a valid number"
	MsgMonthNotNumber = "Month must be a valid number"
	MsgYearNotNumber  = "Year must be a valid number"
	MsgYearTooEarly   = "Year must be 1900 or later for accurate calculations"
	MsgYearFuture     = "Birth year cannot be in the future"
	MsgMonthRange     = "Month must be a number between 1 and 12"
	MsgDayRange       = "Day must be a number between 1 and 31"
	MsgDayInMonth     = "%s %d only has %d days"
	MsgDateFuture     = "Birth date cannot be in the future"
	MsgAgeCeiling     = "Age cannot exceed 150 years. Please verify the birth year."

	FallbackMilestoneBirthday = "Your %s birthday"
	FallbackMilestoneDecade   = "Turning %d - a new decade begins!"
	FallbackMilestoneMajor    = "Major milestone: %d years"

	FallbackFactBaby          = "You're still a baby! Welcome to the world! 🌍"
	FallbackFactEarly         = "You're in your early childhood years! 🧸"
	FallbackFactChild         = "You're in your childhood! Enjoy these carefree years! 🎈"
	FallbackFactTeen          = "You're a teenager! These are formative years! 🎵"
	FallbackFactTwenties      = "You're in your twenties! The world is your oyster! 🌟"
	FallbackFactThirties      = "You're in your thirties! Peak of your career! 💼"
	FallbackFactForties       = "You're in your forties! Wisdom comes with age! 🧠"
	FallbackFactFifties       = "You're in your fifties! Experience is your superpower! ⚡"
	FallbackFactSixties       = "You're in your sixties! Golden years ahead! 🏆"
	FallbackFactSenior        = "You're a senior! Respect and wisdom! 👑"
	FallbackFactDecade        = "Congratulations! You've reached %d years! 🎉"
	FallbackFactWeekday       = "You were born on a %s! 📅"
	FallbackFactWeekend       = "Born on a weekend, a natural party starter! 🥳"
	FallbackFactSeason        = "You were born in %s! 🌸"
	FallbackFactZodiac        = "Your zodiac sign is %s! ✨"
	FallbackFactBirthdayToday = "Happy birthday! Today is your special day! 🎂"
	FallbackFactBirthdayTmrw  = "Your birthday is tomorrow! 🎁"
	FallbackFactBirthdaySoon  = "Only %d days until your next birthday! 🎁"

	FallbackHistory   = "No historical events recorded for this year."
	FallbackShareText = "I'm %d years, %d months, and %d days old!"
	FallbackEvent     = "My birthday 🎂"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgCalcRequested  = "Calculation requested"
	MsgCalcDone       = "Calculation finished"
	MsgCalcRejected   = "Calculation rejected by validation"
	MsgSlowCalc       = "Slow calculation detected"
	MsgPerfReport     = "Performance report"
	MsgPrefsLoaded    = "Preferences loaded"
	MsgPrefsSaved     = "Preferences saved"
	MsgPrefsReset     = "Preferences reset to defaults"
	MsgPrefsFallback  = "Stored preferences invalid, using defaults"
	MsgPrefsMissing   = "Preferences file not found, using defaults"
	MsgLastInputSaved = "Remembered birth date saved"
	MsgLastInputFail  = "Remembered birth date unavailable"
	MsgExported       = "Export written"
	MsgImported       = "Birth date imported from vCard"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgThemeApplied   = "Theme applied"
	MsgSettingsOpen   = "Opening settings window"
	MsgSettingsFocus  = "Settings window already open, requesting focus"
	MsgSettingsSave   = "Saving preferences"
	MsgPickerOpen     = "Opening date picker"
	MsgNotifSkipped   = "Notification skipped by preference"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyFormat    = "format"
	LogKeyDuration  = "duration_ms"
	LogKeyIssues    = "issues"
	LogKeyYears     = "years"
	LogKeyOperation = "operation"
	LogKeyTheme     = "theme"
	LogKeyPath      = "path"
	LogKeyName      = "name"
	LogKeyCount     = "count"
	LogKeyAverage   = "average_ms"
	LogKeySlow      = "slow"
	LogKeyAdvice    = "recommendations"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyBuilt   = "built"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompUISet   = "ui_settings"
	CompShare   = "share"
	CompPrefs   = "prefs"
	CompPerf    = "perf"
	CompCLI     = "cli"
	CompMain    = "main"
	CompI18n    = "i18n"
	CompKeyring = "keyring"
)
