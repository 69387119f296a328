package fgdc

// Paths into the FGDC CSDGM tree, relative to the metadata root.
const (
	xpathTitle        = "idinfo/citation/citeinfo/title"
	xpathAbstract     = "idinfo/descript/abstract"
	xpathPurpose      = "idinfo/descript/purpose"
	xpathSupplemental = "idinfo/descript/supplinf"
	xpathOnlink       = "idinfo/citation/citeinfo/onlink"
	xpathBrowse       = "//browse"
	xpathNetworkRes   = "//networkr"
	xpathOrigin       = "idinfo/citation/citeinfo/origin"
	xpathThemeKeys    = "idinfo/keywords/theme"
	xpathPlaceKeys    = "idinfo/keywords/place"
	xpathPubDate      = "idinfo/citation/citeinfo/pubdate"
	xpathPubTime      = "idinfo/citation/citeinfo/pubtime"
	xpathTimePeriod   = "idinfo/timeperd/timeinfo"
	xpathPublish      = "idinfo/citation/citeinfo/pubinfo/publish"
	xpathPublisher    = "idinfo/citation/citeinfo/pubinfo/publisher"
	xpathTransferSize = "distinfo/stdorder/digform/digtinfo/transize"
	xpathParentLink   = "idinfo/citation/citeinfo/lworkcit/citeinfo/onlink"
	xpathUpdateFreq   = "idinfo/status/update"

	xpathContactPoint    = "idinfo/ptcontac/cntinfo"
	xpathContactProcess  = "dataqual/lineage/procstep/proccont/cntinfo"
	xpathContactMetadata = "metainfo/metc/cntinfo"
	xpathContactDistrib  = "distinfo/distrib/cntinfo"
)

// Bounding coordinates: the CSDGM location first, then the remote-sensing
// extension used by newer records. Each bound falls back on its own.
var boundPaths = [4][2]string{
	{"idinfo/spdom/bounding/westbc", "idinfo/rseSpdom/bounding/westbc"},
	{"idinfo/spdom/bounding/eastbc", "idinfo/rseSpdom/bounding/eastbc"},
	{"idinfo/spdom/bounding/northbc", "idinfo/rseSpdom/bounding/northbc"},
	{"idinfo/spdom/bounding/southbc", "idinfo/rseSpdom/bounding/southbc"},
}
