package usecase

import "context"

// CopywriterInfra — клиент внешнего генеративного сервиса для черновиков
// карточек товара. Любой сбой деградирует до отсутствия подсказки (nil),
// ошибки наружу не поднимаются.
type CopywriterInfra interface {
	SuggestProductCopy(ctx context.Context, productName string, niche string) *CopySuggestion
	AnalyzeCompetitors(ctx context.Context, niche string) string
}

// OrderEventProducer публикует события жизненного цикла заказов.
// Публикация носит уведомительный характер: сбой логируется и не влияет
// на результат операции.
type OrderEventProducer interface {
	PublishOrderEvent(ctx context.Context, req *PublishOrderEventReq) error
}
