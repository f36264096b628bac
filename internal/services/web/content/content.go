// Package content defines the display records shown by the portal landing
// page and the literal values it ships with.
package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/extracurricular-portal/internal/platform/branding"
)

// StatCard is one summary metric tile.
type StatCard struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// NavLink is one navigation anchor. Targets may be placeholders.
type NavLink struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Brand is the logo mark and label at the start of the navigation bar.
type Brand struct {
	Label   string `yaml:"label"`
	LogoSrc string `yaml:"logo_src"`
	LogoAlt string `yaml:"logo_alt"`
}

// Portal is everything the landing page displays.
type Portal struct {
	Brand       Brand      `yaml:"brand"`
	NavLinks    []NavLink  `yaml:"nav_links"`
	Title       string     `yaml:"title"`
	Subtitle    string     `yaml:"subtitle"`
	StatCards   []StatCard `yaml:"stat_cards"`
	Copyright   string     `yaml:"copyright"`
	LastUpdated string     `yaml:"last_updated"`
}

// LogoPlaceholderPath is where the brand logo is served from by default.
const LogoPlaceholderPath = "/api/placeholder/32/32"

// Default returns the portal's built-in content. Each call returns fresh
// slices so callers may modify the result freely.
func Default() Portal {
	return Portal{
		Brand: Brand{
			Label:   "비교과 프로그램",
			LogoSrc: LogoPlaceholderPath,
			LogoAlt: "Logo",
		},
		NavLinks: []NavLink{
			{Label: "홈", Target: "#"},
			{Label: "대시보드", Target: "#"},
			{Label: "프로그램 목록", Target: "#"},
		},
		Title:    branding.AppName,
		Subtitle: "2025년 프로그램 안내 및 성과 분석",
		StatCards: []StatCard{
			{Label: "총 프로그램", Value: "20개"},
			{Label: "참여 학생", Value: "100명"},
			{Label: "평균 만족도", Value: "4.2/5.0"},
			{Label: "취업 연계율", Value: "87.5%"},
		},
		Copyright:   "© 2025 " + branding.AppName + ". All rights reserved.",
		LastUpdated: "최종 업데이트: 2025년 12월 21일",
	}
}

// Validate reports every blank display value. The returned error joins one
// error per offending field.
func (p Portal) Validate() error {
	var errs []error
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", field))
		}
	}

	require("brand.label", p.Brand.Label)
	require("brand.logo_src", p.Brand.LogoSrc)
	require("brand.logo_alt", p.Brand.LogoAlt)
	if len(p.NavLinks) == 0 {
		errs = append(errs, errors.New("nav_links must not be empty"))
	}
	for i, link := range p.NavLinks {
		require(fmt.Sprintf("nav_links[%d].label", i), link.Label)
		require(fmt.Sprintf("nav_links[%d].target", i), link.Target)
	}
	require("title", p.Title)
	require("subtitle", p.Subtitle)
	if len(p.StatCards) == 0 {
		errs = append(errs, errors.New("stat_cards must not be empty"))
	}
	for i, card := range p.StatCards {
		require(fmt.Sprintf("stat_cards[%d].label", i), card.Label)
		require(fmt.Sprintf("stat_cards[%d].value", i), card.Value)
	}
	require("copyright", p.Copyright)
	require("last_updated", p.LastUpdated)

	return errors.Join(errs...)
}
