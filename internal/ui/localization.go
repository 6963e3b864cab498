package ui

import "github.com/ytget/yt-downloader/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyLanguage             = "language"
	KeyURLLabel             = "url_label"
	KeyEnterURL             = "enter_url"
	KeyLoadInfo             = "load_info"
	KeyVideoInformation     = "video_information"
	KeyThumbnailPlaceholder = "thumbnail_placeholder"
	KeyNoThumbnail          = "no_thumbnail"
	KeyDownloadOptions      = "download_options"
	KeyFormat               = "format"
	KeyAudioOnly            = "audio_only"
	KeySaveTo               = "save_to"
	KeyBrowse               = "browse"
	KeyDownload             = "download"
	KeyOpenFolder           = "open_folder"

	// Info text captions
	KeyInfoTitle       = "info_title"
	KeyInfoChannel     = "info_channel"
	KeyInfoDuration    = "info_duration"
	KeyInfoViews       = "info_views"
	KeyInfoUploadDate  = "info_upload_date"
	KeyInfoDescription = "info_description"
	KeyUnknown         = "unknown"

	// Status line
	KeyStatusReady           = "status_ready"
	KeyStatusLoadingInfo     = "status_loading_info"
	KeyStatusReadyToDownload = "status_ready_to_download"
	KeyStatusPreparing       = "status_preparing"
	KeyStatusDownloading     = "status_downloading"
	KeyStatusTransferring    = "status_transferring"
	KeyETASeconds            = "eta_seconds"
	KeyETAUnknown            = "eta_unknown"
	KeyStatusProcessing      = "status_processing"
	KeyStatusCompleted       = "status_completed"
	KeyStatusError           = "status_error"
	KeyStatusTimeout         = "status_timeout"

	// Dialogs
	KeyInputErrorTitle    = "input_error_title"
	KeyErrorTitle         = "error_title"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyNoVideoInfo        = "no_video_info"
	KeyInvalidOutputDir   = "invalid_output_dir"
	KeyErrorOpeningFolder = "error_opening_folder"
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "YouTube Video Downloader",
		KeyLanguage:             "Language",
		KeyURLLabel:             "YouTube URL:",
		KeyEnterURL:             "https://www.youtube.com/watch?v=...",
		KeyLoadInfo:             "Load Info",
		KeyVideoInformation:     "Video Information",
		KeyThumbnailPlaceholder: "Enter URL and click Load Info",
		KeyNoThumbnail:          "No thumbnail available",
		KeyDownloadOptions:      "Download Options",
		KeyFormat:               "Format:",
		KeyAudioOnly:            "Audio Only (MP3)",
		KeySaveTo:               "Save to:",
		KeyBrowse:               "Browse",
		KeyDownload:             "Download",
		KeyOpenFolder:           "Open Folder",

		KeyInfoTitle:       "Title",
		KeyInfoChannel:     "Channel",
		KeyInfoDuration:    "Duration",
		KeyInfoViews:       "Views",
		KeyInfoUploadDate:  "Upload Date",
		KeyInfoDescription: "Description",
		KeyUnknown:         "Unknown",

		KeyStatusReady:           "Ready",
		KeyStatusLoadingInfo:     "Loading video information...",
		KeyStatusReadyToDownload: "Ready to download",
		KeyStatusPreparing:       "Preparing download...",
		KeyStatusDownloading:     "Downloading...",
		KeyStatusTransferring:    "Downloading: %.2f MB/s, ETA: %s",
		KeyETASeconds:            "%d seconds",
		KeyETAUnknown:            "unknown",
		KeyStatusProcessing:      "Processing downloaded file...",
		KeyStatusCompleted:       "Download completed!",
		KeyStatusError:           "Error: %s",
		KeyStatusTimeout:         "Error: Connection timed out. Please check your internet connection and try again.",

		KeyInputErrorTitle:    "Input Error",
		KeyErrorTitle:         "Error",
		KeyPleaseEnterURL:     "Please enter a YouTube URL.",
		KeyNoVideoInfo:        "No video information loaded.",
		KeyInvalidOutputDir:   "Invalid output directory.",
		KeyErrorOpeningFolder: "Error opening folder",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "Загрузчик видео YouTube",
		KeyLanguage:             "Язык",
		KeyURLLabel:             "URL YouTube:",
		KeyEnterURL:             "https://www.youtube.com/watch?v=...",
		KeyLoadInfo:             "Загрузить инфо",
		KeyVideoInformation:     "Информация о видео",
		KeyThumbnailPlaceholder: "Введите URL и нажмите «Загрузить инфо»",
		KeyNoThumbnail:          "Миниатюра недоступна",
		KeyDownloadOptions:      "Параметры загрузки",
		KeyFormat:               "Формат:",
		KeyAudioOnly:            "Только аудио (MP3)",
		KeySaveTo:               "Сохранить в:",
		KeyBrowse:               "Обзор",
		KeyDownload:             "Скачать",
		KeyOpenFolder:           "Открыть папку",

		KeyInfoTitle:       "Название",
		KeyInfoChannel:     "Канал",
		KeyInfoDuration:    "Длительность",
		KeyInfoViews:       "Просмотры",
		KeyInfoUploadDate:  "Дата загрузки",
		KeyInfoDescription: "Описание",
		KeyUnknown:         "Неизвестно",

		KeyStatusReady:           "Готово",
		KeyStatusLoadingInfo:     "Загрузка информации о видео...",
		KeyStatusReadyToDownload: "Готово к загрузке",
		KeyStatusPreparing:       "Подготовка загрузки...",
		KeyStatusDownloading:     "Загрузка...",
		KeyStatusTransferring:    "Загрузка: %.2f МБ/с, осталось: %s",
		KeyETASeconds:            "%d сек.",
		KeyETAUnknown:            "неизвестно",
		KeyStatusProcessing:      "Обработка загруженного файла...",
		KeyStatusCompleted:       "Загрузка завершена!",
		KeyStatusError:           "Ошибка: %s",
		KeyStatusTimeout:         "Ошибка: время ожидания соединения истекло. Проверьте подключение к интернету и попробуйте снова.",

		KeyInputErrorTitle:    "Ошибка ввода",
		KeyErrorTitle:         "Ошибка",
		KeyPleaseEnterURL:     "Пожалуйста, введите URL YouTube.",
		KeyNoVideoInfo:        "Информация о видео не загружена.",
		KeyInvalidOutputDir:   "Неверная папка загрузки.",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "Baixador de Vídeos do YouTube",
		KeyLanguage:             "Idioma",
		KeyURLLabel:             "URL do YouTube:",
		KeyEnterURL:             "https://www.youtube.com/watch?v=...",
		KeyLoadInfo:             "Carregar Info",
		KeyVideoInformation:     "Informações do Vídeo",
		KeyThumbnailPlaceholder: "Digite a URL e clique em Carregar Info",
		KeyNoThumbnail:          "Miniatura indisponível",
		KeyDownloadOptions:      "Opções de Download",
		KeyFormat:               "Formato:",
		KeyAudioOnly:            "Somente Áudio (MP3)",
		KeySaveTo:               "Salvar em:",
		KeyBrowse:               "Navegar",
		KeyDownload:             "Baixar",
		KeyOpenFolder:           "Abrir Pasta",

		KeyInfoTitle:       "Título",
		KeyInfoChannel:     "Canal",
		KeyInfoDuration:    "Duração",
		KeyInfoViews:       "Visualizações",
		KeyInfoUploadDate:  "Data de Envio",
		KeyInfoDescription: "Descrição",
		KeyUnknown:         "Desconhecido",

		KeyStatusReady:           "Pronto",
		KeyStatusLoadingInfo:     "Carregando informações do vídeo...",
		KeyStatusReadyToDownload: "Pronto para baixar",
		KeyStatusPreparing:       "Preparando download...",
		KeyStatusDownloading:     "Baixando...",
		KeyStatusTransferring:    "Baixando: %.2f MB/s, restante: %s",
		KeyETASeconds:            "%d segundos",
		KeyETAUnknown:            "desconhecido",
		KeyStatusProcessing:      "Processando arquivo baixado...",
		KeyStatusCompleted:       "Download concluído!",
		KeyStatusError:           "Erro: %s",
		KeyStatusTimeout:         "Erro: tempo de conexão esgotado. Verifique sua conexão com a internet e tente novamente.",

		KeyInputErrorTitle:    "Erro de Entrada",
		KeyErrorTitle:         "Erro",
		KeyPleaseEnterURL:     "Por favor, digite uma URL do YouTube.",
		KeyNoVideoInfo:        "Nenhuma informação de vídeo carregada.",
		KeyInvalidOutputDir:   "Diretório de saída inválido.",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
	}
}

// SummaryLabels returns the localized captions of the info text
func (l *Localization) SummaryLabels() model.SummaryLabels {
	return model.SummaryLabels{
		Title:       l.GetText(KeyInfoTitle),
		Channel:     l.GetText(KeyInfoChannel),
		Duration:    l.GetText(KeyInfoDuration),
		Views:       l.GetText(KeyInfoViews),
		UploadDate:  l.GetText(KeyInfoUploadDate),
		Description: l.GetText(KeyInfoDescription),
		Unknown:     l.GetText(KeyUnknown),
	}
}
