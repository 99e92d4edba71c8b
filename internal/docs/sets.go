package docs

import "path/filepath"

// DocSet names one buildable document: the directory holding its TeX sources
// and the target stem of the main .tex/.pdf file.
type DocSet struct {
	Dir    string
	Target string
}

// BuildSets returns the six documents shipped in every distribution.
func BuildSets(modflow6Path, examplesPath string) []DocSet {
	docDir := filepath.Join(modflow6Path, "doc")
	return []DocSet{
		{Dir: filepath.Join(docDir, "mf6io"), Target: "mf6io"},
		{Dir: filepath.Join(docDir, "ReleaseNotes"), Target: "ReleaseNotes"},
		{Dir: filepath.Join(docDir, "zonebudget"), Target: "zonebudget"},
		{Dir: filepath.Join(docDir, "ConverterGuide"), Target: "converter_mf5to6"},
		{Dir: filepath.Join(docDir, "SuppTechInfo"), Target: "mf6suptechinfo"},
		{Dir: filepath.Join(examplesPath, "doc"), Target: "mf6examples"},
	}
}

// cleanSets returns every document set whose stale build artifacts are swept
// before a rebuild, including the sibling-repo locations used by older
// checkout layouts.
func cleanSets(modflow6Path, examplesPath string) []DocSet {
	docDir := filepath.Join(modflow6Path, "doc")
	return []DocSet{
		{Dir: filepath.Join(docDir, "mf6io"), Target: "mf6io"},
		{Dir: filepath.Join(docDir, "ReleaseNotes"), Target: "ReleaseNotes"},
		{Dir: filepath.Join(docDir, "zonebudget"), Target: "zonebudget"},
		{Dir: filepath.Join(docDir, "ConverterGuide"), Target: "converter_mf5to6"},
		{Dir: filepath.Join(modflow6Path, "..", "modflow6-docs.git", "mf6suptechinfo"), Target: "mf6suptechinfo"},
		{Dir: filepath.Join(examplesPath, "doc"), Target: "mf6examples"},
	}
}
