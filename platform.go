package tldr

import (
	"sort"
	"strings"
)

// platformFolders maps platform names, including operating system names as
// reported by the runtime, to the directory that holds their pages.
var platformFolders = map[string]string{
	"android": "android",
	"darwin":  "osx",
	"freebsd": "freebsd",
	"linux":   "linux",
	"macos":   "osx",
	"netbsd":  "netbsd",
	"openbsd": "openbsd",
	"osx":     "osx",
	"sunos":   "sunos",
	"solaris": "sunos",
	"win32":   "windows",
	"windows": "windows",
}

// IsSupportedPlatform reports whether a platform name is recognized.
func IsSupportedPlatform(platform string) bool {
	_, ok := platformFolders[platform]
	return ok
}

// SupportedPlatforms returns the recognized platform names in sorted order.
func SupportedPlatforms() []string {
	names := make([]string, 0, len(platformFolders))
	for name := range platformFolders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PreferredPlatform returns the page folder for the configured platform,
// falling back to the folder of the running operating system goos. An
// unrecognized operating system resolves to PlatformCommon.
func PreferredPlatform(configured, goos string) string {
	if folder, ok := platformFolders[configured]; ok {
		return folder
	}
	if folder, ok := platformFolders[goos]; ok {
		return folder
	}
	return PlatformCommon
}

// PreferredLanguage derives the preferred page language from locale
// environment variables. LANGUAGE takes precedence (its first entry), then
// LC_ALL, then LANG. The C and POSIX locales map to DefaultLanguage.
func PreferredLanguage(getenv func(string) string) string {
	if v := getenv("LANGUAGE"); v != "" {
		first, _, _ := strings.Cut(v, ":")
		if lang := stripLocale(first); lang != "" {
			return lang
		}
	}
	for _, key := range []string{"LC_ALL", "LANG"} {
		if lang := stripLocale(getenv(key)); lang != "" {
			return lang
		}
	}
	return DefaultLanguage
}

// NormalizeLanguage strips the encoding and modifier from a locale such as
// "pt_BR.UTF-8@euro" and returns the code to look up among the available
// languages: the full code when available, otherwise its primary subtag.
func NormalizeLanguage(locale string, available func(string) bool) string {
	lang := stripLocale(locale)
	if lang == "" {
		return DefaultLanguage
	}
	if available(lang) {
		return lang
	}
	primary, _, _ := strings.Cut(lang, "_")
	return primary
}

func stripLocale(locale string) string {
	lang, _, _ := strings.Cut(locale, ".")
	lang, _, _ = strings.Cut(lang, "@")
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return lang
}
