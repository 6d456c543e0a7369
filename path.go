package tldr

import (
	"path"
	"strings"
)

// Cache layout names.
const (
	PagesDir       = "pages"
	PageExt        = ".md"
	ShortIndexFile = "shortIndex.json"
	CorpusFile     = "search-corpus.json"
)

// IsPage reports whether a slash-separated path relative to the cache root
// names a page file: <pages dir>/<platform>/<name>.md.
func IsPage(p string) bool {
	if path.Ext(p) != PageExt {
		return false
	}
	parts := strings.Split(p, "/")
	if len(parts) != 3 {
		return false
	}
	top := parts[0]
	return top == PagesDir || strings.HasPrefix(top, PagesDir+".") && len(top) > len(PagesDir)+1
}

// ParsePlatform returns the platform of a page file, which is the name of
// its parent directory.
func ParsePlatform(p string) string {
	return path.Base(path.Dir(p))
}

// ParsePageName returns the page name of a page file.
func ParsePageName(p string) string {
	return strings.TrimSuffix(path.Base(p), PageExt)
}

// ParseLanguage returns the language of a page file, taken from the
// "pages.<code>" top-level directory. Pages under the plain pages
// directory are in DefaultLanguage.
func ParseLanguage(p string) string {
	top, _, _ := strings.Cut(p, "/")
	_, lang, ok := strings.Cut(top, ".")
	if !ok || lang == "" {
		return DefaultLanguage
	}
	return lang
}

// LanguageDir returns the top-level pages directory for a language.
func LanguageDir(language string) string {
	if language == DefaultLanguage || language == "" {
		return PagesDir
	}
	return PagesDir + "." + language
}

// Classify returns the page name and target of a page file.
func Classify(p string) (string, Target) {
	return ParsePageName(p), Target{
		Platform: ParsePlatform(p),
		Language: ParseLanguage(p),
	}
}
