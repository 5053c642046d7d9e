package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

// chartData fabricates chart specifications cycling through bar, pie and
// line types. Axis labels follow the claim's detected domain.
func chartData(rng *rand.Rand, topic Topic, chartCount int) []model.Chart {
	charts := make([]model.Chart, 0, chartCount)
	types := []string{"bar", "pie", "line"}

	for i := 0; i < chartCount; i++ {
		figure := i + 1
		switch types[i%len(types)] {
		case "bar":
			labels := []string{"Control Group", "Test Group A", "Test Group B", "Believers", "Skeptics"}
			labels = labels[:3+rng.IntN(3)]
			data := make([]float64, len(labels))
			for j := range data {
				data[j] = float64(20 + rng.IntN(61))
			}
			charts = append(charts, model.Chart{
				Type:    "bar",
				Title:   fmt.Sprintf("Figure %d: Correlation Analysis", figure),
				XLabel:  "Participant Groups",
				YLabel:  pick(rng, topic.YLabels),
				Labels:  labels,
				Data:    data,
				Caption: fmt.Sprintf("Figure %d. Simulated data for parody purposes. Error bars represent fictional confidence intervals.", figure),
			})
		case "pie":
			labels := []string{"Strongly Agree", "Agree", "Neutral", "Disagree", "Strongly Disagree"}
			raw := make([]float64, len(labels))
			var total float64
			for j := range raw {
				raw[j] = float64(10 + rng.IntN(31))
				total += raw[j]
			}
			data := make([]float64, len(raw))
			for j := range raw {
				// one-decimal shares summing to ~100
				data[j] = float64(int(raw[j]/total*1000)) / 10
			}
			charts = append(charts, model.Chart{
				Type:    "pie",
				Title:   fmt.Sprintf("Figure %d: Response Distribution", figure),
				Labels:  labels,
				Data:    data,
				Caption: fmt.Sprintf("Figure %d. Distribution of fictional responses. All data is simulated.", figure),
			})
		default:
			labels := make([]string, 8)
			data := make([]float64, 8)
			for j := range labels {
				labels[j] = fmt.Sprintf("Week %d", j+1)
				data[j] = float64(30+rng.IntN(21)) + float64(j*(3+rng.IntN(5)))
			}
			charts = append(charts, model.Chart{
				Type:    "line",
				Title:   fmt.Sprintf("Figure %d: Trend Over Time", figure),
				XLabel:  "Time Period",
				YLabel:  pick(rng, topic.YLabels),
				Labels:  labels,
				Data:    data,
				Caption: fmt.Sprintf("Figure %d. Temporal trend in fabricated data. Pattern is entirely coincidental.", figure),
			})
		}
	}
	return charts
}
