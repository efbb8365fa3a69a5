package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todo/internal/filter"
)

type Type string

const (
	TypeNew    Type = "new"
	TypeSelect Type = "select"
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeEdit   Type = "edit"
	TypeClear  Type = "clear"
	TypeFilter Type = "filter"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type NewArgs struct {
	Title string
}

// SelectArgs names a collection by title, or by 1-based position when
// Position is non-zero (written "#2").
type SelectArgs struct {
	Title    string
	Position int
}

type AddArgs struct {
	Content string
}

// RowArgs addresses a 1-based row of the visible task list.
type RowArgs struct {
	Row int
}

type EditArgs struct {
	Row     int
	Content string
}

type FilterArgs struct {
	Setting filter.Setting
}

type Command struct {
	Type   Type
	Raw    string
	New    *NewArgs
	Select *SelectArgs
	Add    *AddArgs
	Toggle *RowArgs
	Edit   *EditArgs
	Filter *FilterArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)

	switch Type(head) {
	case TypeNew:
		return parseNew(input, rest)
	case TypeSelect:
		return parseSelect(input, rest)
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeToggle:
		return parseToggle(input, rest)
	case TypeEdit:
		return parseEdit(input, rest)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	case TypeFilter:
		return parseFilter(input, rest)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseNew(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "new requires a title"}
	}
	return Command{Type: TypeNew, Raw: raw, New: &NewArgs{Title: rest}}, nil
}

func parseSelect(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "select requires a title or #position"}
	}
	if strings.HasPrefix(rest, "#") {
		pos, err := strconv.Atoi(strings.TrimPrefix(rest, "#"))
		if err != nil || pos < 1 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid position: %s", rest)}
		}
		return Command{Type: TypeSelect, Raw: raw, Select: &SelectArgs{Position: pos}}, nil
	}
	return Command{Type: TypeSelect, Raw: raw, Select: &SelectArgs{Title: rest}}, nil
}

func parseAdd(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires content"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Content: rest}}, nil
}

func parseToggle(raw, rest string) (Command, error) {
	row, err := parseRow(rest)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &RowArgs{Row: row}}, nil
}

func parseEdit(raw, rest string) (Command, error) {
	rowText, content, _ := strings.Cut(rest, " ")
	row, err := parseRow(rowText)
	if err != nil {
		return Command{}, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires row and content"}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{Row: row, Content: content}}, nil
}

func parseFilter(raw, rest string) (Command, error) {
	for _, v := range filter.Values() {
		if strings.EqualFold(v, rest) {
			return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Setting: filter.Setting(v)}}, nil
		}
	}
	return Command{}, &CommandError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("filter must be one of %s", strings.Join(filter.Values(), ", ")),
	}
}

func parseRow(text string) (int, error) {
	row, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || row < 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid row: %q", text)}
	}
	return row, nil
}
