package tldr

// Resolve returns the best location of a page for the preferred platform
// and language, or nil if the page has no usable target.
//
// Candidates are tried in order: (platform, language), (platform, en),
// (common, language), (common, en), then any platform in language, then
// any platform in en. Staying on the requested platform always wins over
// staying in the requested language.
func Resolve(entry *PageEntry, platform, language string) *Location {
	if loc := ResolveStrict(entry, platform, language); loc != nil {
		return loc
	}
	if entry == nil {
		return nil
	}

	language = NormalizeLanguage(language, entry.HasLanguage)

	// Targets are sorted, so the first match is the lexically first platform.
	for _, lang := range []string{language, DefaultLanguage} {
		for _, t := range entry.Targets {
			if t.Language == lang {
				return newLocation(t, true)
			}
		}
	}

	return nil
}

// ResolveStrict is like Resolve but never substitutes a platform other
// than the requested one or the common platform.
func ResolveStrict(entry *PageEntry, platform, language string) *Location {
	if entry == nil || len(entry.Targets) == 0 {
		return nil
	}

	language = NormalizeLanguage(language, entry.HasLanguage)

	for _, c := range []Target{
		{Platform: platform, Language: language},
		{Platform: platform, Language: DefaultLanguage},
		{Platform: PlatformCommon, Language: language},
		{Platform: PlatformCommon, Language: DefaultLanguage},
	} {
		if entry.Has(c) {
			return newLocation(c, false)
		}
	}
	return nil
}

func newLocation(t Target, substituted bool) *Location {
	return &Location{
		Dir:         LanguageDir(t.Language) + "/" + t.Platform,
		Platform:    t.Platform,
		Language:    t.Language,
		Substituted: substituted,
	}
}
