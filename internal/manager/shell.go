package manager

import (
	"context"
	"io"
	"sync"

	"hotel/shared/enum"
	"hotel/shared/failure"
)

type Menu string

const (
	MenuBooking  Menu = "booking"
	MenuCustomer Menu = "customer"
	MenuEmployee Menu = "employee"
	MenuFinance  Menu = "finance"
)

var Menus = enum.NewSet(
	enum.Entry[Menu]{Code: MenuBooking, Label: "Booking Management"},
	enum.Entry[Menu]{Code: MenuCustomer, Label: "Customer Management"},
	enum.Entry[Menu]{Code: MenuEmployee, Label: "Employee Management"},
	enum.Entry[Menu]{Code: MenuFinance, Label: "Finance Management"},
)

// Screen is a Manager seen without its record types.
type Screen interface {
	Menu() Menu
	Collection() string
	Mount(ctx context.Context) Status
	List(ctx context.Context) Status
	Delete(ctx context.Context, key string) Status
	SubmitCreate(ctx context.Context, reader io.Reader) Status
	SubmitUpdate(ctx context.Context, key string, reader io.Reader) Status
	ReplaceDraft(reader io.Reader) (map[string]string, error)
	ReplaceEdit(reader io.Reader) (map[string]string, error)
	Paginate(direction Direction) bool
	GoTo(page int) bool
	Select(key string) bool
	Deselect()
	OpenDraft()
	CloseDraft()
	OpenEdit(key string) bool
	CloseEdit()
	View() View
	Schema() FormSchema
	Options() map[string][]enum.Option
	Table(ctx context.Context) (Table, error)
}

type MenuItem struct {
	Code     Menu   `json:"code"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type ShellView struct {
	Menus    []MenuItem `json:"menus"`
	Selected Menu       `json:"selected"`
	Screen   View       `json:"screen"`
}

// Shell shows exactly one screen at a time, booking first.
type Shell struct {
	mu       sync.RWMutex
	screens  map[Menu]Screen
	selected Menu
}

func NewShell(screens ...Screen) *Shell {
	shell := &Shell{
		screens:  make(map[Menu]Screen, len(screens)),
		selected: MenuBooking,
	}

	for _, screen := range screens {
		shell.screens[screen.Menu()] = screen
	}

	return shell
}

// Select switches to menu and mounts its screen. Labels are accepted as
// well as codes.
func (s *Shell) Select(ctx context.Context, menu string) (Screen, Status, error) {
	code, ok := Menus.Normalize(menu)
	if !ok {
		return nil, Status{}, failure.NotFound("menu " + menu + " not found") // nolint:wrapcheck
	}

	s.mu.Lock()
	screen, ok := s.screens[code]
	if !ok {
		s.mu.Unlock()

		return nil, Status{}, failure.NotFound("menu " + menu + " has no screen") // nolint:wrapcheck
	}

	s.selected = code
	s.mu.Unlock()

	return screen, screen.Mount(ctx), nil
}

// Start mounts the selected screen.
func (s *Shell) Start(ctx context.Context) Status {
	screen := s.Current()
	if screen == nil {
		return Status{Kind: KindOK}
	}

	return screen.Mount(ctx)
}

func (s *Shell) Selected() Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selected
}

func (s *Shell) Current() Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.screens[s.selected]
}

// Screen looks a screen up by menu code, label or collection name without
// selecting it.
func (s *Shell) Screen(menu string) (Screen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if code, ok := Menus.Normalize(menu); ok {
		if screen, ok := s.screens[code]; ok {
			return screen, nil
		}

		return nil, failure.NotFound("menu " + menu + " has no screen") // nolint:wrapcheck
	}

	for _, screen := range s.screens {
		if screen.Collection() == menu {
			return screen, nil
		}
	}

	return nil, failure.NotFound("menu " + menu + " not found") // nolint:wrapcheck
}

// Screens lists the registered screens in menu order.
func (s *Shell) Screens() []Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]Screen, 0, len(s.screens))
	for _, code := range Menus.Codes() {
		if screen, ok := s.screens[code]; ok {
			res = append(res, screen)
		}
	}

	return res
}

func (s *Shell) View() ShellView {
	s.mu.RLock()
	selected := s.selected
	screen := s.screens[selected]
	s.mu.RUnlock()

	view := ShellView{Selected: selected}

	for _, code := range Menus.Codes() {
		if _, ok := s.screens[code]; !ok {
			continue
		}

		view.Menus = append(view.Menus, MenuItem{Code: code, Label: Menus.Label(code), Selected: code == selected})
	}

	if screen != nil {
		view.Screen = screen.View()
	}

	return view
}
