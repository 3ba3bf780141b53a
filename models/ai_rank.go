package models

type AIRank string

const (
	AIRankS AIRank = "S"
	AIRankA AIRank = "A"
	AIRankB AIRank = "B"
	AIRankC AIRank = "C"
)

// AIRanks ранги от лучшего к худшему
var AIRanks = []AIRank{AIRankS, AIRankA, AIRankB, AIRankC}

var rankOrder = map[AIRank]int{
	AIRankC: 0,
	AIRankB: 1,
	AIRankA: 2,
	AIRankS: 3,
}

func (r AIRank) IsValid() bool {
	_, ok := rankOrder[r]
	return ok
}

// Order порядковый номер ранга, C < B < A < S
func (r AIRank) Order() int {
	if order, ok := rankOrder[r]; ok {
		return order
	}
	return -1
}

func (r AIRank) String() string {
	return string(r)
}
