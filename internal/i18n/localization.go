package i18n

// Package i18n provides UI text translations shared by the controller and the
// Fyne interface

import "fmt"

// Texts looks up a localized string by key
type Texts interface {
	GetText(key string) string
}

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySelectImages      = "select_images"
	KeyDropHint          = "drop_hint"
	KeyUpload            = "upload"
	KeyQuality           = "quality"
	KeyToggleTheme       = "toggle_theme"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyServerURL         = "server_url"
	KeyDownloadDirectory = "download_directory"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyRemove            = "remove"
	KeyResults           = "results"
	KeySettingsSaved     = "settings_saved"
	KeyReady             = "ready"

	KeySelectImagesFirst = "select_images_first"
	KeyUploadingStart    = "uploading_start"
	KeyUploadingProgress = "uploading_progress"
	KeyProcessingStart   = "processing_start"
	KeyProcessing        = "processing"
	KeyZipping           = "zipping"
	KeyDone              = "done"
	KeyError             = "error"
	KeyNetworkError      = "network_error"
	KeyNetworkErrorAlert = "network_error_alert"
	KeyServerError       = "server_error"
	KeyMissingJobID      = "missing_job_id"
	KeyConnectionLost    = "connection_lost"
	KeyConnectionGaveUp  = "connection_gave_up"
	KeyJobFailed         = "job_failed"
	KeyDownloadFailed    = "download_failed"
	KeyArchiveSaved      = "archive_saved"
	KeyBusy              = "busy"
	KeySkippedFiles      = "skipped_files"
	KeyAddFolder         = "add_folder"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeyCopyPath          = "copy_path"
	KeyPathCopied        = "path_copied"
	KeyErrorOpeningFile  = "error_opening_file"

	KeyOriginalFormat  = "original_format"
	KeyEstimatedFormat = "estimated_format"
	KeyActualFormat    = "actual_format"
	KeyResultOK        = "result_ok"
	KeyResultFailed    = "result_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

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
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// Format looks up key in texts and applies fmt.Sprintf with args
func Format(texts Texts, key string, args ...any) string {
	return fmt.Sprintf(texts.GetText(key), args...)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "WebP Uploader",
		KeySelectImages:      "Select images",
		KeyDropHint:          "Drop images here or use Select images",
		KeyUpload:            "Optimize & Download",
		KeyQuality:           "Quality",
		KeyToggleTheme:       "Toggle theme",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyServerURL:         "Server URL",
		KeyDownloadDirectory: "Download Directory",
		KeyAutoReveal:        "Reveal archive when done",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyRemove:            "Remove",
		KeyResults:           "Results",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyReady:             "Ready",

		KeySelectImagesFirst: "Select images first",
		KeyUploadingStart:    "Uploading... (Q%d)",
		KeyUploadingProgress: "Uploading: %d%% | Quality Q%d",
		KeyProcessingStart:   "Processing...",
		KeyProcessing:        "Processing: %d/%d",
		KeyZipping:           "Creating archive...",
		KeyDone:              "Done ✔",
		KeyError:             "Error ❌",
		KeyNetworkError:      "Network error ❌",
		KeyNetworkErrorAlert: "Network error. Please try again.",
		KeyServerError:       "Server error",
		KeyMissingJobID:      "Server error: the response did not include a job id",
		KeyConnectionLost:    "Connection lost",
		KeyConnectionGaveUp:  "Connection lost. The job status is unknown.",
		KeyJobFailed:         "Processing failed: %s",
		KeyDownloadFailed:    "Archive download failed: %s",
		KeyArchiveSaved:      "Archive saved: %s",
		KeyBusy:              "An upload is already in progress",
		KeySkippedFiles:      "Skipped %d file(s) that are not images",
		KeyAddFolder:         "Add folder",
		KeyReveal:            "Reveal",
		KeyOpen:              "Open",
		KeyCopyPath:          "Copy path",
		KeyPathCopied:        "Path copied to clipboard",
		KeyErrorOpeningFile:  "Error opening file",

		KeyOriginalFormat:  "Original: %s",
		KeyEstimatedFormat: "Estimated: %s (Q%d) · -%d%%",
		KeyActualFormat:    "Actual: %s · -%d%%",
		KeyResultOK:        "✔ %s · %s",
		KeyResultFailed:    "✖ %s: %s",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "WebP Загрузчик",
		KeySelectImages:      "Выбрать изображения",
		KeyDropHint:          "Перетащите изображения сюда или нажмите Выбрать",
		KeyUpload:            "Оптимизировать и скачать",
		KeyQuality:           "Качество",
		KeyToggleTheme:       "Сменить тему",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyServerURL:         "Адрес сервера",
		KeyDownloadDirectory: "Папка загрузки",
		KeyAutoReveal:        "Показать архив по завершении",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyRemove:            "Удалить",
		KeyResults:           "Результаты",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyReady:             "Готово к работе",

		KeySelectImagesFirst: "Сначала выберите изображения",
		KeyUploadingStart:    "Загрузка... (Q%d)",
		KeyUploadingProgress: "Загрузка: %d%% | Качество Q%d",
		KeyProcessingStart:   "Обработка...",
		KeyProcessing:        "Обработка: %d/%d",
		KeyZipping:           "Создание архива...",
		KeyDone:              "Готово ✔",
		KeyError:             "Ошибка ❌",
		KeyNetworkError:      "Ошибка сети ❌",
		KeyNetworkErrorAlert: "Ошибка сети. Попробуйте ещё раз.",
		KeyServerError:       "Ошибка сервера",
		KeyMissingJobID:      "Ошибка сервера: в ответе нет идентификатора задачи",
		KeyConnectionLost:    "Соединение потеряно",
		KeyConnectionGaveUp:  "Соединение потеряно. Состояние задачи неизвестно.",
		KeyJobFailed:         "Ошибка обработки: %s",
		KeyDownloadFailed:    "Не удалось скачать архив: %s",
		KeyArchiveSaved:      "Архив сохранён: %s",
		KeyBusy:              "Загрузка уже выполняется",
		KeySkippedFiles:      "Пропущено файлов (не изображения): %d",
		KeyAddFolder:         "Добавить папку",
		KeyReveal:            "Показать",
		KeyOpen:              "Открыть",
		KeyCopyPath:          "Копировать путь",
		KeyPathCopied:        "Путь скопирован в буфер обмена",
		KeyErrorOpeningFile:  "Ошибка открытия файла",

		KeyOriginalFormat:  "Исходный: %s",
		KeyEstimatedFormat: "Оценка: %s (Q%d) · -%d%%",
		KeyActualFormat:    "Итог: %s · -%d%%",
		KeyResultOK:        "✔ %s · %s",
		KeyResultFailed:    "✖ %s: %s",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "WebP Uploader",
		KeySelectImages:      "Selecionar imagens",
		KeyDropHint:          "Arraste imagens aqui ou use Selecionar imagens",
		KeyUpload:            "Otimizar e baixar",
		KeyQuality:           "Qualidade",
		KeyToggleTheme:       "Alternar tema",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyServerURL:         "URL do servidor",
		KeyDownloadDirectory: "Diretório de Download",
		KeyAutoReveal:        "Mostrar arquivo ao concluir",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyRemove:            "Remover",
		KeyResults:           "Resultados",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyReady:             "Pronto",

		KeySelectImagesFirst: "Selecione imagens primeiro",
		KeyUploadingStart:    "Enviando... (Q%d)",
		KeyUploadingProgress: "Enviando: %d%% | Qualidade Q%d",
		KeyProcessingStart:   "Processando...",
		KeyProcessing:        "Processando: %d/%d",
		KeyZipping:           "Criando arquivo...",
		KeyDone:              "Concluído ✔",
		KeyError:             "Erro ❌",
		KeyNetworkError:      "Erro de rede ❌",
		KeyNetworkErrorAlert: "Erro de rede. Tente novamente.",
		KeyServerError:       "Erro do servidor",
		KeyMissingJobID:      "Erro do servidor: a resposta não contém o id da tarefa",
		KeyConnectionLost:    "Conexão perdida",
		KeyConnectionGaveUp:  "Conexão perdida. O estado da tarefa é desconhecido.",
		KeyJobFailed:         "Falha no processamento: %s",
		KeyDownloadFailed:    "Falha ao baixar o arquivo: %s",
		KeyArchiveSaved:      "Arquivo salvo: %s",
		KeyBusy:              "Um envio já está em andamento",
		KeySkippedFiles:      "%d arquivo(s) ignorado(s) por não serem imagens",
		KeyAddFolder:         "Adicionar pasta",
		KeyReveal:            "Mostrar",
		KeyOpen:              "Abrir",
		KeyCopyPath:          "Copiar caminho",
		KeyPathCopied:        "Caminho copiado para a área de transferência",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",

		KeyOriginalFormat:  "Original: %s",
		KeyEstimatedFormat: "Estimado: %s (Q%d) · -%d%%",
		KeyActualFormat:    "Real: %s · -%d%%",
		KeyResultOK:        "✔ %s · %s",
		KeyResultFailed:    "✖ %s: %s",
	}
}
