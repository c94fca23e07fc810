// Package tag and its format subpackage together implement the envelope
// and payload codecs for Serato's tag kinds: eight Serato tag kinds, each
// shipping in some subset of the four host envelopes (ID3 GEOB, FLAC
// Vorbis comment, MP4 freeform atom, Ogg Vorbis comment), identified by
// the keys below.
package tag

// Envelope identifying keys, per tag kind. A (kind, envelope) pair with no
// constant here is one the tag does not ship in, and this package has no
// Parse/Write function for that pair; no function returns a
// KindUnsupported error for it at run time.
const (
	AnalysisID3Desc  = "Serato Analysis"
	AnalysisFLACKey  = "SERATO_ANALYSIS"
	AnalysisMP4Atom  = "----:com.serato.dj:analysisVersion"
	AnalysisOggKey   = "serato_analysis_ver"

	AutotagsID3Desc = "Serato Autotags"
	AutotagsFLACKey = "SERATO_AUTOGAIN"
	AutotagsMP4Atom = "----:com.serato.dj:autgain"
	AutotagsOggKey  = "serato_autogain"

	BeatgridID3Desc = "Serato BeatGrid"
	BeatgridFLACKey = "SERATO_BEATGRID"
	BeatgridMP4Atom = "----:com.serato.dj:beatgrid"
	BeatgridOggKey  = "serato_beatgrid"

	MarkersID3Desc = "Serato Markers_"
	MarkersMP4Atom = "----:com.serato.dj:markers"

	Markers2ID3Desc     = "Serato Markers2"
	Markers2FLACKey      = "SERATO_MARKERS_V2"
	Markers2MP4FreeName  = "markersv2"
	Markers2OggKey       = "serato_markers2"

	OverviewID3Desc = "Serato Overview"
	OverviewFLACKey = "SERATO_OVERVIEW"
	OverviewMP4Atom = "----:com.serato.dj:overview"

	VidAssocID3Desc = "Serato VidAssoc"
	VidAssocFLACKey = "SERATO_VIDASSOC"

	RelVolAdFLACKey = "SERATO_RELVOL"
	RelVolAdMP4Atom = "----:com.serato.dj:relvol"
)
