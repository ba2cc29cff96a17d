package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Skyism/gratefulnessjar/internal/journal/models"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered (i.e., the user presses Enter twice). The trailing newline
// on each line is trimmed and the collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetRating prompts for a day-quality level and parses the numeric answer.
// The full vocabulary is shown so the user never has to remember the scale.
func GetRating(reader *bufio.Reader, w io.Writer) (models.Rating, error) {
	labels := make([]string, 0, len(models.AllRatings()))
	for _, r := range models.AllRatings() {
		labels = append(labels, fmt.Sprintf("%d=%s", int(r), r.Label()))
	}

	answer, err := GetSimpleText(reader, "How was the day? "+strings.Join(labels, ", "), w)
	if err != nil {
		return 0, err
	}

	return parseRating(answer)
}

// parseRating converts a numeric answer into a Rating.
func parseRating(answer string) (models.Rating, error) {
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("rating must be a number from 1 to 7")
	}
	r := models.Rating(n)
	if !r.IsValid() {
		return 0, fmt.Errorf("rating must be a number from 1 to 7")
	}
	return r, nil
}
