package autoreply

import "recruit-backend/models"

const (
	defaultHeader = "{{氏名}} 様\n\n「{{求人名}}」にご応募いただきありがとうございます。\n\n"
	defaultFooter = "\n\n{{会社名}} 採用担当"

	defaultSubject = "【{{会社名}}】「{{求人名}}」選考結果のご連絡"
)

var defaultBodies = map[models.AIRank]string{
	models.AIRankS: defaultHeader + "書類選考の結果、ぜひ面接にお越しいただきたいと思います。\n追って詳細をご連絡いたします。" + defaultFooter,
	models.AIRankA: defaultHeader + "書類選考を通過されました。引き続き選考を進めさせていただきます。\n追って詳細をご連絡いたします。" + defaultFooter,
	models.AIRankB: defaultHeader + "応募書類を確認いたしました。現在選考中ですので、しばらくお待ちください。" + defaultFooter,
	models.AIRankC: defaultHeader + "誠に恐れ入りますが、今回は採用要件との兼ね合いから、ご期待に添えない結果となりました。\n今後のご活躍を心よりお祈り申し上げます。" + defaultFooter,
}

// DefaultBody текст по умолчанию, если у тенанта нет шаблона; неизвестный ранг - как C
func DefaultBody(rank models.AIRank) string {
	if body, ok := defaultBodies[rank]; ok {
		return body
	}
	return defaultBodies[models.AIRankC]
}
