package manager

import (
	"context"
	"fmt"
	"time"

	"hotel/shared/constant"
)

// Status is the outcome of the last operation on a manager. Failures carry
// the HTTP-style code of the underlying error.
type Status struct {
	Operation Operation         `json:"operation,omitempty"`
	Kind      Kind              `json:"kind"`
	Code      int               `json:"code"`
	Message   string            `json:"message,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	Key       string            `json:"key,omitempty"`
	At        time.Time         `json:"at,omitzero"`
}

func (s Status) OK() bool {
	return s.Kind == KindOK
}

type Header struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type Row struct {
	Key      string   `json:"key"`
	Cells    []string `json:"cells"`
	Selected bool     `json:"selected"`
}

type View struct {
	Menu        Menu        `json:"menu"`
	Title       string      `json:"title"`
	Collection  string      `json:"collection"`
	Headers     []Header    `json:"headers"`
	Rows        []Row       `json:"rows"`
	Page        int         `json:"page"`
	TotalPages  int         `json:"totalPages"`
	Total       int         `json:"total"`
	PageSize    int         `json:"pageSize"`
	ShowingFrom int         `json:"showingFrom"`
	ShowingTo   int         `json:"showingTo"`
	HasPrev     bool        `json:"hasPrev"`
	HasNext     bool        `json:"hasNext"`
	Loading     bool        `json:"loading"`
	InFlight    []Operation `json:"inFlight"`
	Selected    any         `json:"selected,omitempty"`
	Draft       any         `json:"draft,omitempty"`
	EditKey     string      `json:"editKey,omitempty"`
	Edit        any         `json:"edit,omitempty"`
	Status      Status      `json:"status"`
}

// View renders the current page as text cells.
func (m *Manager[R, C, U]) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := len(m.records)
	start := min((m.page-1)*PageSize, total)
	end := min(start+PageSize, total)

	view := View{
		Menu:       m.cfg.Menu,
		Title:      m.cfg.Title,
		Collection: m.cfg.Collection,
		Headers:    make([]Header, len(m.cfg.Columns)),
		Rows:       make([]Row, 0, end-start),
		Page:       m.page,
		TotalPages: m.totalPages(),
		Total:      total,
		PageSize:   PageSize,
		ShowingTo:  end,
		HasPrev:    m.page > 1,
		HasNext:    m.page < m.totalPages(),
		Loading:    m.pending > 0,
		InFlight:   []Operation{},
		EditKey:    m.editKey,
		Status:     m.status,
	}

	if end > start {
		view.ShowingFrom = start + 1
	}

	for idx, column := range m.cfg.Columns {
		view.Headers[idx] = Header{Key: column.Key, Title: column.Title}
	}

	for _, record := range m.records[start:end] {
		key := m.cfg.Key(record)
		view.Rows = append(view.Rows, Row{
			Key:      key,
			Cells:    m.cells(record),
			Selected: key == m.selected && key != constant.Empty,
		})
	}

	for _, operation := range []Operation{OperationCreate, OperationUpdate, OperationDelete} {
		if m.inFlight[operation] {
			view.InFlight = append(view.InFlight, operation)
		}
	}

	if idx := m.indexOf(m.selected); idx >= 0 {
		view.Selected = m.records[idx]
	}

	if m.draft != nil {
		view.Draft = *m.draft
	}

	if m.edit != nil {
		view.Edit = *m.edit
	}

	return view
}

func (m *Manager[R, C, U]) cells(record R) []string {
	cells := make([]string, len(m.cfg.Columns))

	for idx, column := range m.cfg.Columns {
		cells[idx] = Cell(column.Value(record))
	}

	return cells
}

// Cell substitutes the placeholder for an empty value.
func Cell(value string) string {
	if value == constant.Empty {
		return Placeholder
	}

	return value
}

// Table is a whole collection rendered with the screen's columns.
type Table struct {
	Title      string     `json:"title"`
	Collection string     `json:"collection"`
	Headers    []Header   `json:"headers"`
	Rows       [][]string `json:"rows"`
}

// Table fetches the collection and renders every record. The screen state
// is left untouched.
func (m *Manager[R, C, U]) Table(ctx context.Context) (Table, error) {
	records, err := m.backend.List(ctx)
	if err != nil {
		return Table{}, fmt.Errorf("failed to list %s: %w", m.cfg.Collection, err)
	}

	table := Table{
		Title:      m.cfg.Title,
		Collection: m.cfg.Collection,
		Headers:    make([]Header, len(m.cfg.Columns)),
		Rows:       make([][]string, 0, len(records)),
	}

	for idx, column := range m.cfg.Columns {
		table.Headers[idx] = Header{Key: column.Key, Title: column.Title}
	}

	for _, record := range records {
		table.Rows = append(table.Rows, m.cells(record))
	}

	return table, nil
}
