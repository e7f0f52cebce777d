package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agalitsyn/todo-tui/internal/model"
	"github.com/agalitsyn/todo-tui/internal/state"
)

const dueDateLayout = "2006-01-02"

const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldDueDate
	fieldTags
	fieldCount
)

// taskForm collects input for the add and edit dialogs. An empty editID
// means the form creates a new task.
type taskForm struct {
	editID   string
	title    textinput.Model
	desc     textinput.Model
	due      textinput.Model
	tags     textinput.Model
	priority model.Priority
	focus    int
	errMsg   string
}

func newTaskForm() *taskForm {
	f := &taskForm{priority: model.PriorityMedium}

	f.title = textinput.New()
	f.title.Placeholder = "what needs to be done"
	f.title.CharLimit = 200
	f.title.Focus()

	f.desc = textinput.New()
	f.desc.Placeholder = "details (optional)"
	f.desc.CharLimit = 500

	f.due = textinput.New()
	f.due.Placeholder = dueDateLayout
	f.due.CharLimit = len(dueDateLayout)

	f.tags = textinput.New()
	f.tags.Placeholder = "comma,separated,tags"
	f.tags.CharLimit = 200

	return f
}

func editTaskForm(t model.Task) *taskForm {
	f := newTaskForm()
	f.editID = t.ID
	f.title.SetValue(t.Title)
	f.desc.SetValue(t.Description)
	f.priority = t.Priority
	if t.HasDueDate() {
		f.due.SetValue(t.DueDate.Format(dueDateLayout))
	}
	f.tags.SetValue(strings.Join(t.Tags, ","))
	return f
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.form

	switch msg.String() {
	case "esc":
		a.form = nil
		a.mode = modeList
		return a, nil

	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return a, textinput.Blink

	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
		return a, textinput.Blink

	case "enter":
		return a.submitForm()
	}

	if f.focus == fieldPriority {
		switch msg.String() {
		case "left", "h":
			f.priority = prevPriority(f.priority)
		case "right", "l", " ":
			f.priority = nextPriority(f.priority)
		}
		return a, nil
	}

	return a, f.updateFocused(msg)
}

func (f *taskForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.desc, cmd = f.desc.Update(msg)
	case fieldDueDate:
		f.due, cmd = f.due.Update(msg)
	case fieldTags:
		f.tags, cmd = f.tags.Update(msg)
	}
	return cmd
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	f := a.form

	// Empty titles never reach the reducer, the form refuses to submit.
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		f.setFocus(fieldTitle)
		f.errMsg = "title must not be empty"
		return a, textinput.Blink
	}

	due, err := parseDueDate(f.due.Value())
	if err != nil {
		f.setFocus(fieldDueDate)
		f.errMsg = "due date must be " + dueDateLayout
		return a, textinput.Blink
	}

	desc := f.desc.Value()
	tags := parseTags(f.tags.Value())

	if f.editID != "" {
		priority := f.priority
		a.dispatch(state.UpdateTask{
			ID: f.editID,
			Patch: model.TaskPatch{
				Title:       &title,
				Description: &desc,
				Priority:    &priority,
				DueDate:     &due,
				Tags:        &tags,
			},
		})
	} else {
		a.dispatch(state.AddTask{
			Title:       title,
			Description: desc,
			Priority:    f.priority,
			DueDate:     due,
			Tags:        tags,
		})
	}

	a.form = nil
	a.mode = modeList
	return a, nil
}

func (f *taskForm) setFocus(field int) {
	f.focus = field
	f.errMsg = ""
	inputs := []*textinput.Model{&f.title, &f.desc, nil, &f.due, &f.tags}
	for i, in := range inputs {
		if in == nil {
			continue
		}
		if i == field {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func parseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dueDateLayout, s)
}

func parseTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityLow:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityHigh
	default:
		return model.PriorityLow
	}
}

func prevPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityHigh:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityLow
	default:
		return model.PriorityHigh
	}
}
