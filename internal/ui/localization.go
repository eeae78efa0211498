package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySelectVideo       = "select_video"
	KeySaveOutput        = "save_output"
	KeySave              = "save"
	KeyFolder            = "folder"
	KeyFileName          = "file_name"
	KeyBrowse            = "browse"
	KeyReplaceTitle      = "replace_title"
	KeyReplaceMessage    = "replace_message"
	KeyChooseCompression = "choose_compression"
	KeyExtreme           = "extreme"
	KeyMedium            = "medium"
	KeyFast              = "fast"
	KeyCancel            = "cancel"
	KeyShowInFolder      = "show_in_folder"
	KeyOpenVideo         = "open_video"
	KeyErrorOpeningDir   = "error_opening_dir"
	KeyErrorOpeningFile  = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if text, found := l.texts[LangEnglish][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish:    "English",
		LangRussian:    "Русский",
		LangPortuguese: "Português",
	}
}

// languageCodes returns the available codes in a stable menu order
func (l *Localization) languageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:          "Video Compressor",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySelectVideo:       "Select Video file",
		KeySaveOutput:        "Save compressed video as",
		KeySave:              "Save",
		KeyFolder:            "Folder",
		KeyFileName:          "File name",
		KeyBrowse:            "Browse",
		KeyReplaceTitle:      "Replace file?",
		KeyReplaceMessage:    "%s already exists. Replace it?",
		KeyChooseCompression: "Choose compression level",
		KeyExtreme:           "Extreme",
		KeyMedium:            "Medium",
		KeyFast:              "Fast",
		KeyCancel:            "Cancel",
		KeyShowInFolder:      "Show in folder",
		KeyOpenVideo:         "Open video",
		KeyErrorOpeningDir:   "Error opening folder",
		KeyErrorOpeningFile:  "Error opening file",
	}

	l.texts[LangRussian] = map[string]string{
		KeyAppTitle:          "Сжатие видео",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySelectVideo:       "Выбрать видеофайл",
		KeySaveOutput:        "Сохранить сжатое видео как",
		KeySave:              "Сохранить",
		KeyFolder:            "Папка",
		KeyFileName:          "Имя файла",
		KeyBrowse:            "Обзор",
		KeyReplaceTitle:      "Заменить файл?",
		KeyReplaceMessage:    "%s уже существует. Заменить?",
		KeyChooseCompression: "Выберите уровень сжатия",
		KeyExtreme:           "Максимальное",
		KeyMedium:            "Среднее",
		KeyFast:              "Быстрое",
		KeyCancel:            "Отмена",
		KeyShowInFolder:      "Показать в папке",
		KeyOpenVideo:         "Открыть видео",
		KeyErrorOpeningDir:   "Ошибка открытия папки",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
	}

	l.texts[LangPortuguese] = map[string]string{
		KeyAppTitle:          "Compressor de Vídeo",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySelectVideo:       "Selecionar arquivo de vídeo",
		KeySaveOutput:        "Salvar vídeo comprimido como",
		KeySave:              "Salvar",
		KeyFolder:            "Pasta",
		KeyFileName:          "Nome do arquivo",
		KeyBrowse:            "Navegar",
		KeyReplaceTitle:      "Substituir arquivo?",
		KeyReplaceMessage:    "%s já existe. Substituir?",
		KeyChooseCompression: "Escolha o nível de compressão",
		KeyExtreme:           "Extrema",
		KeyMedium:            "Média",
		KeyFast:              "Rápida",
		KeyCancel:            "Cancelar",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyOpenVideo:         "Abrir vídeo",
		KeyErrorOpeningDir:   "Erro ao abrir pasta",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
	}
}
