package score

import (
	"sort"

	"wakeup-punch-system/internal/model"
)

type MemberRanking struct {
	MemberID string `json:"member_id" excel:"-"`
	Rank     int    `json:"rank" excel:"排名"`
	Name     string `json:"name" excel:"姓名"`
	Score    int    `json:"score" excel:"分数"`
}

// Rank 按成员汇总当月起床+青蛙得分并排名
// 同分同名次，下一个名次跳过（5,3,3,1 -> 1,2,2,4），同分者保持首次出现的顺序
// 不在成员列表中的记录会被忽略
func Rank(members []model.Member, logs []model.WakeupLog) []MemberRanking {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	index := make(map[string]int)
	var result []MemberRanking
	for i := range logs {
		name, ok := names[logs[i].MemberID]
		if !ok {
			continue
		}
		pos, seen := index[logs[i].MemberID]
		if !seen {
			pos = len(result)
			index[logs[i].MemberID] = pos
			result = append(result, MemberRanking{MemberID: logs[i].MemberID, Name: name})
		}
		result[pos].Score += eventScore(&logs[i])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	for i := range result {
		if i > 0 && result[i].Score == result[i-1].Score {
			result[i].Rank = result[i-1].Rank
		} else {
			result[i].Rank = i + 1
		}
	}
	return result
}
