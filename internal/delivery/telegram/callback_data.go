package telegram

import (
	"strconv"
	"strings"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionLevel = "level"
	actionMode  = "mode"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
	}
}

func buildLevelCallback(level int) string {
	return callbackData{
		Action: actionLevel,
		Params: []string{strconv.Itoa(level)},
	}.encode()
}

// buildModeCallback carries the chosen level along with the mode so the
// mode step needs no transport-side session state.
func buildModeCallback(level int, mode entities.PracticeMode) string {
	return callbackData{
		Action: actionMode,
		Params: []string{strconv.Itoa(level), string(mode)},
	}.encode()
}
