// Package branding holds product naming shared by page chrome and commands.
package branding

// AppName is the portal's display name.
const AppName = "비교과 프로그램 포털"

// ProjectSlug names the project in paths and deploy targets.
const ProjectSlug = "extracurricular-portal"
