package calculix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/notargets/gocalix/model"
)

// EOL terminates every line of the deck; Deck converts it when CRLF output is requested
const EOL = "\n"

// Maximum number of entries CalculiX reads from one data line
const maxEntriesPerLine = 16

// ErrUnsupported is returned when a model object cannot be written with a directive
var ErrUnsupported = fmt.Errorf("calculix: %w", model.ErrUnsupportedCombination)

func unsupported(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrUnsupported}, args...)...)
}

// Keyword is one CalculiX directive: a keyword line starting with '*' and the
// data lines that follow it. Both strings end with EOL unless empty.
type Keyword interface {
	KeywordString() string
	DataString() string
}

// Render concatenates the keyword line and data lines of k
func Render(k Keyword) string {
	return k.KeywordString() + k.DataString()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func floats(vs ...float64) []string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = formatFloat(v)
	}
	return s
}

// line joins the entries of one data line
func line(entries ...string) string {
	return strings.Join(entries, ", ") + EOL
}

func param(name string, value interface{}) string {
	switch v := value.(type) {
	case float64:
		return ", " + name + "=" + formatFloat(v)
	default:
		return fmt.Sprintf(", %s=%v", name, v)
	}
}

// frequencyParam is written only when results are not requested every increment
func frequencyParam(frequency int) string {
	if frequency > 1 {
		return param("Frequency", frequency)
	}
	return ""
}

func idLines(ids []int) string {
	var sb strings.Builder
	for i := 0; i < len(ids); i += maxEntriesPerLine {
		end := i + maxEntriesPerLine
		if end > len(ids) {
			end = len(ids)
		}
		entries := make([]string, end-i)
		for j, id := range ids[i:end] {
			entries[j] = strconv.Itoa(id)
		}
		sb.WriteString(line(entries...))
	}
	return sb.String()
}

// continuedLine writes entries over as many lines as needed, every line but
// the last ending with a comma to continue the record
func continuedLine(entries []string) string {
	var sb strings.Builder
	for i := 0; i < len(entries); i += maxEntriesPerLine {
		end := i + maxEntriesPerLine
		if end > len(entries) {
			end = len(entries)
		}
		sb.WriteString(strings.Join(entries[i:end], ", "))
		if end < len(entries) {
			sb.WriteString(",")
		}
		sb.WriteString(EOL)
	}
	return sb.String()
}

func norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func unit3(name string, v [3]float64) ([3]float64, error) {
	n := norm(v)
	if n == 0 {
		return v, unsupported("%s needs a non-zero direction", name)
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}, nil
}

// temperatureDependent is true when rows span more than one temperature
func temperatureDependent(temperatures []float64) bool {
	for _, t := range temperatures {
		if t != temperatures[0] {
			return true
		}
	}
	return false
}

// table writes property rows, adding the temperature column for temperature
// dependent data
func table(rows [][]float64, temperatures []float64) string {
	withT := temperatureDependent(temperatures)
	var sb strings.Builder
	for i, r := range rows {
		entries := floats(r...)
		if withT {
			entries = append(entries, formatFloat(temperatures[i]))
		}
		sb.WriteString(line(entries...))
	}
	return sb.String()
}
