package domain

// Theme — тема оформления витрины.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Language — код языка интерфейса из закрытого набора локалей.
type Language string

const (
	LangEnglish Language = "en"
	LangSpanish Language = "es"
	LangHebrew  Language = "he"
	LangAmharic Language = "am"
	LangArabic  Language = "ar"
	LangFrench  Language = "fr"
	LangGerman  Language = "de"
	LangChinese Language = "zh"
)

// TextDirection — направление текста для локали.
type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

// SupportedLanguages — полный набор поддерживаемых локалей.
var SupportedLanguages = []Language{
	LangEnglish, LangSpanish, LangHebrew, LangAmharic,
	LangArabic, LangFrench, LangGerman, LangChinese,
}

// ValidLanguage сообщает, входит ли код в набор поддерживаемых локалей.
func ValidLanguage(code Language) bool {
	for _, lang := range SupportedLanguages {
		if lang == code {
			return true
		}
	}

	return false
}

// Direction возвращает направление текста локали.
// Иврит и арабский пишутся справа налево, остальные локали — слева направо.
func (l Language) Direction() TextDirection {
	switch l {
	case LangHebrew, LangArabic:
		return DirectionRTL
	default:
		return DirectionLTR
	}
}

// ValidTheme сообщает, является ли значение допустимой темой.
func ValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}
