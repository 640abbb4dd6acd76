package evaluation

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Report is one evaluation run's results.
type Report struct {
	RunID     uuid.UUID
	Episodes  int
	Games     int
	Seed      uint64
	Seat0Rate float64
	Seat1Rate float64
}

// NewReport tags the results with a fresh run id.
func NewReport(episodes, games int, seed uint64, seat0, seat1 float64) Report {
	return Report{
		RunID:     uuid.New(),
		Episodes:  episodes,
		Games:     games,
		Seed:      seed,
		Seat0Rate: seat0,
		Seat1Rate: seat1,
	}
}

// Average returns the mean of the two seats' win rates.
func (r Report) Average() float64 {
	return (r.Seat0Rate + r.Seat1Rate) / 2
}

// Writer persists evaluation reports as CSV under a per-run directory named
// by timestamp.
type Writer struct {
	baseDir string
}

// NewWriter creates <dir>/<timestamp>/ and returns a writer rooted there.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create results directory")
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory reports are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteReport writes one report as results.csv in the writer's directory.
func (w *Writer) WriteReport(report Report) error {
	path := filepath.Join(w.baseDir, "results.csv")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create results file")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"run_id", "episodes", "games", "seed", "seat0_win_rate", "seat1_win_rate", "average_win_rate"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write results header")
	}

	row := []string{
		report.RunID.String(),
		strconv.Itoa(report.Episodes),
		strconv.Itoa(report.Games),
		strconv.FormatUint(report.Seed, 10),
		strconv.FormatFloat(report.Seat0Rate, 'f', 4, 64),
		strconv.FormatFloat(report.Seat1Rate, 'f', 4, 64),
		strconv.FormatFloat(report.Average(), 'f', 4, 64),
	}
	if err := writer.Write(row); err != nil {
		return errors.Wrap(err, "failed to write results row")
	}
	return writer.Error()
}
