package sentiment

import "MarketPulse/internal/domain/models"

// Merge combines independently fetched per-timeframe snapshots into one
// record per symbol. The base timeframe is the canonical index: the output
// carries exactly the symbols of lists[base], in that order; symbols that
// appear only in other timeframes are dropped. A timeframe whose fetch
// failed (empty or absent list) yields unavailable slices for every symbol
// rather than aborting the merge.
//
// Lookup is by exact symbol via a per-timeframe index built once, so the
// merge is linear in the total input size.
func Merge(base models.Timeframe, lists map[models.Timeframe][]models.Instrument) []models.MultiTimeframeInstrument {
	baseList := lists[base]

	indexes := make(map[models.Timeframe]map[string]models.Instrument, len(lists))
	for tf, list := range lists {
		if tf == base {
			continue
		}
		idx := make(map[string]models.Instrument, len(list))
		for _, in := range list {
			if in.Symbol == "" {
				continue
			}
			idx[in.Symbol] = in
		}
		indexes[tf] = idx
	}

	merged := make([]models.MultiTimeframeInstrument, 0, len(baseList))
	for _, in := range baseList {
		if in.Symbol == "" {
			continue
		}
		m := models.MultiTimeframeInstrument{
			Symbol:     in.Symbol,
			Name:       in.Name,
			Short:      in.Short,
			Price:      in.Price,
			Timeframes: make(map[models.Timeframe]models.TimeframeSlice, len(lists)),
		}
		m.Timeframes[base] = sliceOf(in)
		for tf, idx := range indexes {
			if other, ok := idx[in.Symbol]; ok {
				m.Timeframes[tf] = sliceOf(other)
			} else {
				m.Timeframes[tf] = models.TimeframeSlice{}
			}
		}
		merged = append(merged, m)
	}
	return merged
}

func sliceOf(in models.Instrument) models.TimeframeSlice {
	return models.TimeframeSlice{
		Change:           in.Change,
		ChangePct:        in.ChangePct,
		RelativeStrength: in.RelativeStrength,
		Error:            in.Error,
	}
}
