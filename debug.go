package jpfrontend

import (
	"github.com/k0kubun/pp"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/njd"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/utterance"
)

// Debug turns on pp-rendered dumps of the NJD and Utterance trees to stdout
// at each pipeline stage boundary. Off by default; meant for interactive
// troubleshooting of a rewrite pass or the breath-group/accent-phrase split,
// not for production logging (see SetLogger for that).
func (j *JPreprocess) Debug(on bool) *JPreprocess {
	j.debug = on
	return j
}

func dumpNJD(doc *njd.NJD) {
	pp.Println(doc)
}

func dumpUtterance(u utterance.Utterance) {
	pp.Println(u)
}
