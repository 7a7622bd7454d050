package prefs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

type Kind int

const (
	KindBool Kind = iota
	// KindList is a list edited as comma-separated text.
	KindList
)

// Setting is a single preference shown on a pane, written straight through
// to its store on commit.
type Setting struct {
	Name  string
	Kind  Kind
	store Store

	initialBool bool
	initialList []string
	boolValue   bool
	listValue   []string
}

func (s *Setting) changed() bool {
	if s.Kind == KindBool {
		return s.boolValue != s.initialBool
	}
	return !slices.Equal(s.listValue, s.initialList)
}

func (s *Setting) value() any {
	if s.Kind == KindBool {
		return s.boolValue
	}
	if s.listValue == nil {
		return []string{}
	}
	return append([]string(nil), s.listValue...)
}

// Settings is the generic part of a preferences pane: registered settings
// are loaded from their stores and committed back when they change.
type Settings struct {
	order  []*Setting
	byName map[string]*Setting
}

func NewSettings() *Settings {
	return &Settings{byName: make(map[string]*Setting)}
}

// Register loads name from store. Registering a name twice replaces the
// earlier registration.
func (s *Settings) Register(name string, store Store, kind Kind) *Setting {
	setting := &Setting{Name: name, Kind: kind, store: store}
	switch kind {
	case KindBool:
		setting.initialBool = cast.ToBool(store.Get(name, false))
		setting.boolValue = setting.initialBool
	case KindList:
		setting.initialList = stringList(store.Get(name, []string{}))
		setting.listValue = append([]string(nil), setting.initialList...)
	}

	if _, exists := s.byName[name]; exists {
		s.order = slices.DeleteFunc(s.order, func(o *Setting) bool { return o.Name == name })
	}
	s.order = append(s.order, setting)
	s.byName[name] = setting
	return setting
}

func (s *Settings) lookup(name string, kind Kind) (*Setting, error) {
	setting, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	if setting.Kind != kind {
		return nil, fmt.Errorf("setting %s has a different kind", name)
	}
	return setting, nil
}

// Names returns the registered setting names in registration order.
func (s *Settings) Names() []string {
	names := make([]string, len(s.order))
	for i, setting := range s.order {
		names[i] = setting.Name
	}
	return names
}

func (s *Settings) Kind(name string) (Kind, bool) {
	setting, ok := s.byName[name]
	if !ok {
		return 0, false
	}
	return setting.Kind, true
}

func (s *Settings) Bool(name string) bool {
	setting, err := s.lookup(name, KindBool)
	if err != nil {
		return false
	}
	return setting.boolValue
}

func (s *Settings) SetBool(name string, v bool) error {
	setting, err := s.lookup(name, KindBool)
	if err != nil {
		return err
	}
	setting.boolValue = v
	return nil
}

func (s *Settings) List(name string) []string {
	setting, err := s.lookup(name, KindList)
	if err != nil {
		return nil
	}
	return append([]string(nil), setting.listValue...)
}

// Text renders a list setting the way it is edited.
func (s *Settings) Text(name string) string {
	return strings.Join(s.List(name), ", ")
}

// SetText parses comma-separated text into a list setting.
func (s *Settings) SetText(name, text string) error {
	setting, err := s.lookup(name, KindList)
	if err != nil {
		return err
	}
	setting.listValue = ParseList(text)
	return nil
}

func (s *Settings) Changed() bool {
	for _, setting := range s.order {
		if setting.changed() {
			return true
		}
	}
	return false
}

// Commit writes every changed setting to its store.
func (s *Settings) Commit() error {
	for _, setting := range s.order {
		if !setting.changed() {
			continue
		}
		if err := setting.store.Set(setting.Name, setting.value()); err != nil {
			return &CommitError{Op: "save " + setting.Name, Err: err}
		}
		setting.initialBool = setting.boolValue
		setting.initialList = append([]string(nil), setting.listValue...)
	}
	return nil
}

// Reset discards uncommitted changes.
func (s *Settings) Reset() {
	for _, setting := range s.order {
		setting.boolValue = setting.initialBool
		setting.listValue = append([]string(nil), setting.initialList...)
	}
}
