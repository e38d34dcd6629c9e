package kuhn

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Report writes the estimated game value for player 0 followed by one
// line per discovered infoset, sorted by key. It does not modify the
// Trainer, so repeated calls produce identical output.
func (t *Trainer) Report(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Average game value: %v\n", t.GameValue())
	for _, s := range t.Summaries() {
		strat := make([]string, len(s.AverageStrategy))
		for i, p := range s.AverageStrategy {
			strat[i] = fmt.Sprintf("%.4f", p)
		}

		fmt.Fprintf(bw, "infoset:%v, avgStrat:[%s], count:%d, util_sum:%.0f, util:%.4f\n",
			s.Key, strings.Join(strat, " "), s.Visits, s.UtilSum, s.MeanUtil())
	}

	return errors.Wrap(bw.Flush(), "error writing report")
}
