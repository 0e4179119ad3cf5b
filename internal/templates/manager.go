// Package templates loads announcement templates and substitutes variables.
// Templates are plain text with $variable placeholders; the defaults are
// embedded in the binary and can be overridden from a directory.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/teamvirrey/meetup-announcer/internal/errors"
)

//go:embed templates/*.txt
var defaultTemplates embed.FS

// EventKind selects the shiny-availability wording for an event type
type EventKind string

const (
	EventDynamax   EventKind = "dynamax"
	EventSpotlight EventKind = "spotlight"
	EventLegendary EventKind = "legendary"
	EventMaxBattle EventKind = "max_battle"
)

// placeholderPattern matches $name, ${name}, and the $$ escape
var placeholderPattern = regexp.MustCompile(`\$\$|\$\{(\w+)\}|\$(\w+)`)

type parsedTemplate struct {
	text string
	// placeholders is the sorted set of variable names the text requires
	placeholders []string
}

// Config contains configuration options for the template manager.
type Config struct {
	// Dir overrides the embedded templates (optional). Templates are
	// looked up there first, falling back to the embedded defaults.
	Dir string
}

// Manager loads named templates and renders them with supplied variables
type Manager struct {
	dir string

	mu    sync.Mutex
	cache map[string]*parsedTemplate
}

// New creates a new template manager
func New(cfg *Config) (*Manager, error) {
	dir := ""
	if cfg != nil {
		dir = cfg.Dir
	}
	return &Manager{
		dir:   dir,
		cache: make(map[string]*parsedTemplate),
	}, nil
}

func parse(content string) *parsedTemplate {
	seen := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		name := match[1]
		if name == "" {
			name = match[2]
		}
		if name != "" {
			seen[name] = true
		}
	}

	placeholders := make([]string, 0, len(seen))
	for name := range seen {
		placeholders = append(placeholders, name)
	}
	sort.Strings(placeholders)

	return &parsedTemplate{text: content, placeholders: placeholders}
}

func (m *Manager) load(name string) (*parsedTemplate, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, errors.InvalidArgumentf("invalid template name %q", name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if tpl, ok := m.cache[name]; ok {
		return tpl, nil
	}

	filename := name + ".txt"

	if m.dir != "" {
		content, err := os.ReadFile(filepath.Join(m.dir, filename))
		if err == nil {
			tpl := parse(string(content))
			m.cache[name] = tpl
			return tpl, nil
		}
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read template %q", name)
		}
	}

	content, err := defaultTemplates.ReadFile("templates/" + filename)
	if err != nil {
		return nil, errors.NotFoundf("template %q not found", name)
	}

	tpl := parse(string(content))
	m.cache[name] = tpl
	return tpl, nil
}

// Render substitutes vars into the named template. Every placeholder in
// the template must be supplied; rendering fails before any substitution,
// so output is never emitted with unresolved placeholders.
func (m *Manager) Render(name string, vars map[string]string) (string, error) {
	tpl, err := m.load(name)
	if err != nil {
		return "", err
	}

	for _, placeholder := range tpl.placeholders {
		if _, ok := vars[placeholder]; !ok {
			return "", errors.MissingVariablef(placeholder, "template %q is missing variable %q", name, placeholder)
		}
	}

	rendered := placeholderPattern.ReplaceAllStringFunc(tpl.text, func(match string) string {
		if match == "$$" {
			return "$"
		}
		return vars[strings.Trim(match[1:], "{}")]
	})
	return rendered, nil
}

// ListTemplates returns the available template names, embedded defaults
// and override-directory templates combined, sorted
func (m *Manager) ListTemplates() []string {
	seen := make(map[string]bool)

	entries, _ := fs.ReadDir(defaultTemplates, "templates")
	for _, entry := range entries {
		seen[strings.TrimSuffix(entry.Name(), ".txt")] = true
	}

	if m.dir != "" {
		dirEntries, err := os.ReadDir(m.dir)
		if err == nil {
			for _, entry := range dirEntries {
				if strings.HasSuffix(entry.Name(), ".txt") {
					seen[strings.TrimSuffix(entry.Name(), ".txt")] = true
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShinyText returns the Spanish shiny-availability line for an event.
// Max battles and spotlight hours do not boost the base 1/512 odds;
// legendary raids and battle days run boosted odds around 1/20.
func ShinyText(available bool, event EventKind) string {
	if !available {
		return "La forma shiny no estará disponible. 🚫✨"
	}

	switch event {
	case EventDynamax:
		return "La forma shiny estará disponible, pero tengan en cuenta que la probabilidad base (1/512) no se incrementa en batallas Max. ✨"
	case EventSpotlight:
		return "La forma shiny estará disponible, pero tengan en cuenta que la probabilidad base (1/512) no se incrementa durante la hora. ✨"
	case EventMaxBattle:
		return "La forma shiny estará potenciada (alrededor de 1/20). ✨"
	case EventLegendary:
		return "La forma shiny estará disponible (alrededor de 1/20). ✨"
	default:
		return "La forma shiny estará disponible. ✨"
	}
}

// MultiShinyText returns the shiny line for a multi-Pokémon legendary hour
func MultiShinyText(available, unavailable []string) string {
	total := len(available) + len(unavailable)
	switch {
	case total == 1:
		return ShinyText(len(available) == 1, EventLegendary)
	case len(unavailable) == 0:
		return "La forma shiny estará disponible para todos (alrededor de 1/20). ✨"
	case len(available) == 0:
		return "La forma shiny no estará disponible para ninguno. 🚫✨"
	default:
		return fmt.Sprintf(
			"La forma shiny estará disponible para %s (alrededor de 1/20), pero no para %s. ✨",
			FormatNameList(available), FormatNameList(unavailable),
		)
	}
}

// FormatNameList joins names with Spanish list grammar: "A", "A y B",
// "A, B y C"
func FormatNameList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " y " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " y " + names[len(names)-1]
	}
}

// StardustDetails formats the stardust bonus line. Catches award double
// stardust during the hour, and a star piece adds another 50%.
func StardustDetails(baseStardust int) string {
	doubled := baseStardust * 2
	withStarPiece := doubled * 3 / 2
	return fmt.Sprintf("Polvos estelares: cada captura otorgará %d, %d con estrella. ⭐️", doubled, withStarPiece)
}
