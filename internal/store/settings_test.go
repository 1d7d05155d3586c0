package store

import "testing"

func TestMergeSettingsFillsBlanksFromDefaults(t *testing.T) {
	def := DefaultSettings()
	loaded := SiteSettings{}
	loaded.Hero.Title = "Custom Hero"
	loaded.Navbar.Socials.Instagram = "https://instagram.com/jojo"

	merged := MergeSettings(def, loaded)

	if merged.Hero.Title != "Custom Hero" {
		t.Fatalf("loaded field lost: %q", merged.Hero.Title)
	}
	if merged.Navbar.Socials.Instagram != "https://instagram.com/jojo" {
		t.Fatalf("loaded social lost: %q", merged.Navbar.Socials.Instagram)
	}
	if merged.Navbar.Logo != def.Navbar.Logo {
		t.Fatalf("blank field not defaulted: %q", merged.Navbar.Logo)
	}
	if merged.HomeSections.ArchiveTag != def.HomeSections.ArchiveTag {
		t.Fatalf("blank section tag not defaulted: %q", merged.HomeSections.ArchiveTag)
	}
}

func TestMergeSettingsFullDocumentWinsEverywhere(t *testing.T) {
	def := DefaultSettings()
	full := DefaultSettings()
	full.Navbar.Logo = "ELENA"
	full.Footer.SubscribeTitle = "Sign up"
	full.PageHeaders.Journal.Subtitle = "Notes from the studio"

	merged := MergeSettings(def, full)
	if merged.Navbar.Logo != "ELENA" {
		t.Fatalf("expected loaded logo, got %q", merged.Navbar.Logo)
	}
	if merged.Footer.SubscribeTitle != "Sign up" {
		t.Fatalf("expected loaded subscribe title, got %q", merged.Footer.SubscribeTitle)
	}
	if merged.PageHeaders.Journal.Subtitle != "Notes from the studio" {
		t.Fatalf("expected loaded journal subtitle, got %q", merged.PageHeaders.Journal.Subtitle)
	}
}
