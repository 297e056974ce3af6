// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
	"unicode"
)

// Category groups devices for presentation and feed filtering.
type Category string

const (
	CategorySmartphone Category = "smartphone"
	CategoryTablet     Category = "tablet"
	CategoryLaptop     Category = "laptop"
	CategoryConsole    Category = "console"
	CategoryWatch      Category = "watch"
)

// Device is seeded reference data. The core never mutates it.
type Device struct {
	ID        string    `json:"id"`        // Brand+model slug, e.g. "samsung-galaxy-s25".
	Brand     string    `json:"brand"`     // Display brand.
	Model     string    `json:"model"`     // Display model.
	Category  Category  `json:"category"`  // Device category.
	ImageURL  string    `json:"image_url"` // Product image used by quote pages.
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns "Brand Model".
func (d *Device) DisplayName() string {
	if d == nil {
		return ""
	}

	return strings.TrimSpace(d.Brand + " " + d.Model)
}

// DeviceSlug derives the device identifier from a brand and a model name.
// "Samsung", "Galaxy S25" becomes "samsung-galaxy-s25".
func DeviceSlug(brand, model string) string {
	var b strings.Builder
	pendingDash := false

	for _, r := range strings.ToLower(strings.TrimSpace(brand) + " " + strings.TrimSpace(model)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false

			continue
		}
		pendingDash = true
	}

	return b.String()
}
