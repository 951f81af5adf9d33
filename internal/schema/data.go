package schema

// Section display colors, shared between the per-media-type layouts.
var sectionColors = map[string]string{
	"Administrative":        "#FFA500",
	"Descriptive":           "#9370DB",
	"Technical Original":    "#BEBEBE",
	"Technical Master":      "#708090",
	"Access Copy":           "#4682B4",
	"Technical Access Copy": "#4682B4",
	"Capture Chain":         "#6A5ACD",
	"Preservation":          "#3CB371",
}

var (
	qcStatusOptions      = []string{"Pass", "Fail", "Needs review"}
	acquisitionOptions   = []string{"Donation", "Purchase", "Transfer", "In-house"}
	copyrightOptions     = []string{"In copyright", "Public domain", "Unknown"}
	accessOptions        = []string{"Public web", "Reading-room only", "Restricted"}
	genreOptions         = []string{"Documentary", "News report", "Interview", "Oral history", "Lecture", "Advertisement / Commercial", "Feature film", "Educational program", "Home video", "Music", "Sports broadcast", "Public service announcement"}
	languageOptions      = []string{"ar", "en", "fr", "es", "de"}
	signalTypeOptions    = []string{"Analog", "Digital"}
	formatLevelOptions   = []string{"Consumer", "Professional"}
	tapeFormatOptions    = []string{"VHS", "VHS-C", "8mm", "Hi8", "D8", "MiniDV", "MicroMV", "Betamax", "U-matic Low", "U-matic Hi", "Betacam SP", "Digital Betacam", "Betacam IMX", "DVCAM", "HDCAM", "XDCAM"}
	photoFormatOptions   = []string{"Printed Photo", "Negative", "Slide"}
	signalStandardOpts   = []string{"PAL", "NTSC", "SECAM"}
	recordingModeOptions = []string{"SP", "LP", "EP"}
	resolutionOptions    = []string{"576i", "480p"}
	frameRateOptions     = []string{"23.976", "24", "25", "29.97"}
	aspectRatioOptions   = []string{"4:3", "16:9"}
)

func field(name string) Field { return Field{Name: name} }

func pick(name string, options []string) Field {
	return Field{Name: name, Options: options}
}

func prose(name string) Field { return Field{Name: name, LongText: true} }

func section(name string, fields ...Field) Section {
	return Section{Name: name, Color: sectionColors[name], Fields: fields}
}

var videoAudioSections = []Section{
	section("Administrative",
		field("Title"),
		field("Identifier"),
		field("CollectionName"),
		pick("AcquisitionMethod", acquisitionOptions),
		field("DonorSourceContact"),
		field("Contributors"),
		field("DateOfCreation"),
		field("RightsHolder"),
		pick("AccessConditions", accessOptions),
		field("HoldingInstitution"),
		pick("CopyRightStatus", copyrightOptions),
		field("UserRestrictions"),
		pick("QCStatus", qcStatusOptions),
		prose("QCReport"),
		field("QCOperator"),
	),
	section("Descriptive",
		field("Identifier"),
		field("Title"),
		field("Subject"),
		prose("Summary"),
		field("KeyWords"),
		pick("Genre", genreOptions),
		field("Creator"),
		pick("Languages", languageOptions),
		field("GeographicLocation"),
		field("EventDate"),
		field("PeopleInVideo"),
	),
	section("Technical Original",
		pick("SignalType", signalTypeOptions),
		pick("FormatLevel", formatLevelOptions),
		pick("Format", tapeFormatOptions),
		pick("SignalStandard", signalStandardOpts),
		pick("RecordingMode", recordingModeOptions),
		field("TapeLengthMinutes"),
		field("AudioChannels"),
		prose("ConditionNotes"),
		field("OriginalLabel"),
		prose("FormatNotes"),
	),
	section("Technical Master",
		field("FileFormat"),
		field("BitDepth"),
		pick("Resolution", resolutionOptions),
		pick("FrameRate", frameRateOptions),
		pick("AspectRatio", aspectRatioOptions),
		field("WidthHeight"),
		field("ScanType"),
		field("ColorSubSampling"),
		field("ColorSpace"),
		field("AudioFormat"),
		field("AudioSampleRateKHz"),
		field("AudioBitDepth"),
		field("AudioChannelsCount"),
		field("DataRate"),
		field("Duration"),
		field("FileSizeGB"),
		field("Checksums"),
		Field{Name: "EmbeddedMetadataSchema", Default: "PBCoreXML"},
	),
	section("Access Copy",
		field("Container"),
		field("BitDepth"),
		pick("Resolution", resolutionOptions),
		field("AudioChannel"),
		field("Duration"),
		field("DataRate"),
		field("FileSizeGB"),
	),
	section("Capture Chain",
		field("DigitizationDate"),
		field("OperatorName"),
		field("PlaybackDevice"),
		field("TBCModel"),
		field("FrameSynchronizer"),
		field("CaptureHardware"),
		field("CaptureSoftware"),
		prose("SignalPathNotes"),
		field("AudioDelayApplied"),
		prose("IssuesDuringCapture"),
	),
	section("Preservation",
		field("SourceProvenance"),
		prose("PreservationActions"),
		prose("MigrationHistory"),
		prose("ErrorReports"),
		field("StorageLocation"),
		field("BackupDetails"),
	),
}

var imageSections = []Section{
	section("Administrative",
		field("Title"),
		field("Identifier"),
		field("CollectionName"),
		pick("AcquisitionMethod", acquisitionOptions),
		field("DonorSourceContact"),
		field("Contributors"),
		field("DateOfCreation"),
		field("RightsHolder"),
		pick("AccessConditions", accessOptions),
		field("HoldingInstitution"),
		pick("CopyRightStatus", copyrightOptions),
		field("UserRestrictions"),
	),
	section("Descriptive",
		field("Identifier"),
		field("Title"),
		field("Keywords"),
		pick("Genre", genreOptions),
		field("Creator"),
		pick("Languages", languageOptions),
		field("GeographicLocation"),
		field("EventDate"),
		field("PeopleInPhoto"),
		prose("Description"),
	),
	section("Technical Original",
		pick("Format", photoFormatOptions),
		prose("ConditionNotes"),
	),
	section("Technical Master",
		field("FileFormat"),
		field("BitDepth"),
		field("WidthHeight"),
		field("ColorSpace"),
		field("DPI"),
		field("FileSizeGB"),
		field("Checksum"),
	),
	section("Technical Access Copy",
		field("FileFormat"),
		field("BitDepth"),
		field("WidthHeight"),
		field("DPI"),
		field("FileSizeGB"),
	),
	section("Capture Chain",
		field("DigitizationDate"),
		field("OperatorName"),
		field("ScannerModel"),
	),
	section("Preservation",
		prose("ErrorReports"),
		field("StorageLocation"),
		field("BackupDetails"),
	),
}

var catalog = map[string][]Section{
	"video": videoAudioSections,
	"audio": videoAudioSections,
	"image": imageSections,
}
