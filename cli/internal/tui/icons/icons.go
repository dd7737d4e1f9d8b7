// ABOUTME: Glyphs for part categories, build status and actions
// ABOUTME: Nerd Font codepoints when the terminal likely has one, plain Unicode otherwise

package icons

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
)

// nerdFontTerminals ship or commonly pair with a patched font
var nerdFontTerminals = []string{"iterm", "alacritty", "wezterm", "kitty", "ghostty"}

// HasNerdFonts reports whether glyphs from a Nerd Font can be used. HRG_NERD_FONTS
// forces the choice; otherwise the terminal is guessed from TERM_PROGRAM and TERM.
var HasNerdFonts = sync.OnceValue(func() bool {
	if v, ok := os.LookupEnv("HRG_NERD_FONTS"); ok && v != "" {
		on, err := strconv.ParseBool(v)
		return err == nil && on
	}
	if os.Getenv("NERD_FONTS") == "1" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM_PROGRAM") + " " + os.Getenv("TERM"))
	return slices.ContainsFunc(nerdFontTerminals, func(t string) bool {
		return strings.Contains(term, t)
	})
})

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// Part categories
	CPU     = Icon{"\uf4bc", "●"}     // nf-oct-cpu
	GPU     = Icon{"\U000f08ae", "▤"} // nf-md-expansion_card
	Board   = Icon{"\U000f061a", "▦"} // nf-md-developer_board
	Memory  = Icon{"\U000f035b", "◆"} // nf-md-memory
	Disk    = Icon{"\U000f02ca", "■"} // nf-md-harddisk
	Power   = Icon{"\U000f0425", "⚡"} // nf-md-power_plug
	Case    = Icon{"\U000f01c4", "▣"} // nf-md-desktop_tower
	Cooler  = Icon{"\U000f0210", "✻"} // nf-md-fan
	Unknown = Icon{"\uf128", "?"}     // nf-fa-question

	// Status indicators
	CheckOK  = Icon{"\uf49e", "✓"} // nf-oct-check_circle
	Warning  = Icon{"\uf421", "⚠"} // nf-oct-alert
	Critical = Icon{"\uf52f", "✗"} // nf-oct-x_circle
	Info     = Icon{"\uf449", "ℹ"} // nf-oct-info

	// Actions
	Wizard = Icon{"\U000f0093", "★"} // nf-md-auto_fix
	Back   = Icon{"\U000f004d", "←"} // nf-md-arrow_left
	Quit   = Icon{"\U000f05fc", "×"} // nf-md-exit_to_app

	// Application
	App    = Icon{"\U000f0379", "◈"} // nf-md-monitor
	Budget = Icon{"\U000f0114", "$"} // nf-md-cash
)

var categoryIcons = map[models.Category]Icon{
	models.CategoryCPU:         CPU,
	models.CategoryGPU:         GPU,
	models.CategoryMotherboard: Board,
	models.CategoryMemory:      Memory,
	models.CategoryStorage:     Disk,
	models.CategoryPSU:         Power,
	models.CategoryCase:        Case,
	models.CategoryCooler:      Cooler,
}

// ForCategory returns the icon of a part category
func ForCategory(c models.Category) Icon {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return Unknown
}
