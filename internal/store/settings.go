package store

// MergeSettings overlays a loaded settings document on top of defaults,
// field by field. A blank field in the loaded document keeps the default, so
// a partial document read back from an older snapshot or backup never
// clobbers sibling fields. Adding a field to SiteSettings requires extending
// this function.
func MergeSettings(def, loaded SiteSettings) SiteSettings {
	out := def

	setIf(&out.Navbar.Logo, loaded.Navbar.Logo)
	setIf(&out.Navbar.Subtitle, loaded.Navbar.Subtitle)
	setIf(&out.Navbar.Links.Home, loaded.Navbar.Links.Home)
	setIf(&out.Navbar.Links.Apparel, loaded.Navbar.Links.Apparel)
	setIf(&out.Navbar.Links.Fibre, loaded.Navbar.Links.Fibre)
	setIf(&out.Navbar.Links.Visual, loaded.Navbar.Links.Visual)
	setIf(&out.Navbar.Links.Journal, loaded.Navbar.Links.Journal)
	setIf(&out.Navbar.Socials.Instagram, loaded.Navbar.Socials.Instagram)
	setIf(&out.Navbar.Socials.Facebook, loaded.Navbar.Socials.Facebook)
	setIf(&out.Navbar.Socials.YouTube, loaded.Navbar.Socials.YouTube)

	setIf(&out.Hero.Tag, loaded.Hero.Tag)
	setIf(&out.Hero.Title, loaded.Hero.Title)
	setIf(&out.Hero.Description, loaded.Hero.Description)
	setIf(&out.Hero.ImageLeft, loaded.Hero.ImageLeft)
	setIf(&out.Hero.ImageRight, loaded.Hero.ImageRight)

	setIf(&out.Footer.SubscribeTitle, loaded.Footer.SubscribeTitle)
	setIf(&out.Footer.ContactTag, loaded.Footer.ContactTag)
	setIf(&out.Footer.ContactEmail, loaded.Footer.ContactEmail)

	setIf(&out.HomeSections.ApparelTitle, loaded.HomeSections.ApparelTitle)
	setIf(&out.HomeSections.ApparelTag, loaded.HomeSections.ApparelTag)
	setIf(&out.HomeSections.FibreTitle, loaded.HomeSections.FibreTitle)
	setIf(&out.HomeSections.FibreTag, loaded.HomeSections.FibreTag)
	setIf(&out.HomeSections.VisualTitle, loaded.HomeSections.VisualTitle)
	setIf(&out.HomeSections.VisualTag, loaded.HomeSections.VisualTag)
	setIf(&out.HomeSections.ArchiveTitle, loaded.HomeSections.ArchiveTitle)
	setIf(&out.HomeSections.ArchiveTag, loaded.HomeSections.ArchiveTag)

	setIf(&out.PageHeaders.Apparel.Title, loaded.PageHeaders.Apparel.Title)
	setIf(&out.PageHeaders.Apparel.Subtitle, loaded.PageHeaders.Apparel.Subtitle)
	setIf(&out.PageHeaders.Fibre.Title, loaded.PageHeaders.Fibre.Title)
	setIf(&out.PageHeaders.Fibre.Subtitle, loaded.PageHeaders.Fibre.Subtitle)
	setIf(&out.PageHeaders.Visual.Title, loaded.PageHeaders.Visual.Title)
	setIf(&out.PageHeaders.Visual.Subtitle, loaded.PageHeaders.Visual.Subtitle)
	setIf(&out.PageHeaders.Journal.Title, loaded.PageHeaders.Journal.Title)
	setIf(&out.PageHeaders.Journal.Subtitle, loaded.PageHeaders.Journal.Subtitle)

	setIf(&out.Meta.TabTitle, loaded.Meta.TabTitle)
	setIf(&out.Meta.Favicon, loaded.Meta.Favicon)

	return out
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
