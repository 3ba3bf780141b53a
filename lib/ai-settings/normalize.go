package aisettings

import (
	"sort"

	dbmodels "recruit-backend/models/db"
)

const weightsTotal = 100

// NormalizeWeights приводит сумму весов к 100 пропорционально (метод наибольшего остатка).
// Отрицательные веса или нулевая сумма - веса по умолчанию. changed - веса были изменены.
func NormalizeWeights(w dbmodels.Weights) (result dbmodels.Weights, changed bool) {
	sum := w.Sum()
	if w.HasNegative() || sum <= 0 {
		return dbmodels.DefaultWeights(), true
	}
	if sum == weightsTotal {
		return w, false
	}
	values := []*int{&w.SkillMatch, &w.Experience, &w.Education, &w.Motivation, &w.ResponseQuality}
	type remainder struct {
		idx  int
		rest int
	}
	rests := make([]remainder, 0, len(values))
	assigned := 0
	for idx, v := range values {
		scaled := *v * weightsTotal
		*v = scaled / sum
		assigned += *v
		rests = append(rests, remainder{idx: idx, rest: scaled % sum})
	}
	sort.SliceStable(rests, func(a, b int) bool {
		return rests[a].rest > rests[b].rest
	})
	for k := 0; assigned < weightsTotal; k++ {
		*values[rests[k%len(rests)].idx]++
		assigned++
	}
	return w, true
}

// NormalizeThresholds пороги вне 0..100 или не по убыванию - пороги по умолчанию
func NormalizeThresholds(t dbmodels.Thresholds) (result dbmodels.Thresholds, changed bool) {
	for _, v := range []int{t.S, t.A, t.B} {
		if v < 0 || v > 100 {
			return dbmodels.DefaultThresholds(), true
		}
	}
	if !t.IsOrdered() {
		return dbmodels.DefaultThresholds(), true
	}
	return t, false
}
