// Package session держит состояние страницы магазина: корзину и
// предпочтения оформления. Единственный владелец соответствующих ключей
// хранилища — все побочные эффекты персистентности проходят через него.
package session

import (
	"context"
	"sync"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
)

// Session — явный объект состояния, передаваемый по ссылке, а не
// глобальный синглтон. Каждая мутация корзины/предпочтений сразу
// сохраняет снимок в хранилище.
type Session struct {
	mu        sync.RWMutex
	cart      []domain.CartItem
	adminMode bool
	theme     domain.Theme
	language  domain.Language

	store  usecase.StoreRepository
	prefs  *cfg.PreferencesCfg
	logger logger.Logger
}

func NewSession(store usecase.StoreRepository, prefs *cfg.PreferencesCfg, logger logger.Logger) *Session {
	return &Session{
		cart:     []domain.CartItem{},
		theme:    domain.ThemeLight,
		language: domain.LangEnglish,
		store:    store,
		prefs:    prefs,
		logger:   logger,
	}
}

// Hydrate загружает сохранённые корзину, тему и язык. Если тема не
// сохранялась, берётся системное предпочтение из конфигурации, иначе
// светлая; язык по умолчанию — базовая локаль.
func (s *Session) Hydrate(ctx context.Context) error {
	const op = "Session.Hydrate"

	cart, err := s.store.ReadCart(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	theme, err := s.store.GetTheme(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !domain.ValidTheme(theme) {
		theme = domain.Theme(s.prefs.DefaultTheme)
		if !domain.ValidTheme(theme) {
			theme = domain.ThemeLight
		}
	}

	lang, err := s.store.GetLanguage(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !domain.ValidLanguage(lang) {
		lang = domain.Language(s.prefs.DefaultLanguage)
		if !domain.ValidLanguage(lang) {
			lang = domain.LangEnglish
		}
	}

	s.mu.Lock()
	s.cart = cart
	s.theme = theme
	s.language = lang
	s.mu.Unlock()

	return nil
}

// AddToCart добавляет товар в корзину. Если строка с таким ID уже есть,
// её количество увеличивается — дубликатов строк не бывает.
func (s *Session) AddToCart(ctx context.Context, product domain.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			s.cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart = append(s.cart, *domain.NewCartItem(product, quantity))
	}

	return s.persistCart(ctx)
}

// RemoveFromCart убирает строку по ID товара; отсутствующая строка — no-op.
func (s *Session) RemoveFromCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]domain.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.ID != productID {
			filtered = append(filtered, item)
		}
	}
	s.cart = filtered

	return s.persistCart(ctx)
}

// UpdateQuantity перезаписывает количество строки. Количество меньше 1
// игнорируется: обнуление строки делается только явным RemoveFromCart.
func (s *Session) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
			break
		}
	}

	return s.persistCart(ctx)
}

// ClearCart опустошает корзину.
func (s *Session) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = []domain.CartItem{}

	return s.persistCart(ctx)
}

// Cart возвращает копию строк корзины.
func (s *Session) Cart() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.CartItem, len(s.cart))
	copy(items, s.cart)

	return items
}

// CartTotal пересчитывает сумму корзины при каждом чтении: Σ цена × количество.
func (s *Session) CartTotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, item := range s.cart {
		total += item.Price * int64(item.Quantity)
	}

	return total
}

// CartCount пересчитывает общее количество единиц товара в корзине.
func (s *Session) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, item := range s.cart {
		count += item.Quantity
	}

	return count
}

// ToggleAdminMode переключает флаг админского интерфейса. Флаг влияет
// только на навигацию и не является контролем доступа; не сохраняется.
func (s *Session) ToggleAdminMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adminMode = !s.adminMode

	return s.adminMode
}

func (s *Session) AdminMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.adminMode
}

// ToggleTheme переключает тему и сохраняет выбор.
func (s *Session) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == domain.ThemeDark {
		s.theme = domain.ThemeLight
	} else {
		s.theme = domain.ThemeDark
	}

	if err := s.store.SetTheme(ctx, s.theme); err != nil {
		return s.theme, e.Wrap("Session.ToggleTheme", err)
	}

	return s.theme, nil
}

func (s *Session) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.theme
}

// SetLanguage устанавливает язык из поддерживаемого набора и сохраняет
// выбор. Неизвестный код отклоняется.
func (s *Session) SetLanguage(ctx context.Context, code domain.Language) error {
	if !domain.ValidLanguage(code) {
		return e.ErrUnsupportedLocale
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.language = code
	if err := s.store.SetLanguage(ctx, code); err != nil {
		return e.Wrap("Session.SetLanguage", err)
	}

	return nil
}

func (s *Session) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.language
}

// Direction возвращает направление текста текущей локали.
func (s *Session) Direction() domain.TextDirection {
	return s.Language().Direction()
}

// persistCart сохраняет снимок корзины. Вызывается под мьютексом.
func (s *Session) persistCart(ctx context.Context) error {
	if err := s.store.WriteCart(ctx, s.cart); err != nil {
		return e.Wrap("Session.persistCart", err)
	}

	return nil
}
