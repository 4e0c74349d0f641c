package moderation

// DefaultTerms is the curated local filter list. Order matters: entries are
// checked first to last and the first substring hit wins. Overridable via
// the moderation.terms config key.
var DefaultTerms = []string{
	"madharchod",
	"bhenchod",
	"chutiya",
	"mc bc",
	"gandu",
	"harami",
	"fuck you",
	"motherfucker",
	"go kill yourself",
	"kys",
	"slut",
	"whore",
	"nigger",
	"faggot",
}
