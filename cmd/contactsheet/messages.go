package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/contactsheet"
)

// Message keys. The key is also the English text.
const (
	msgPrompt     = "Enter the path to a folder with images (absolute or relative):\nType \"exit\" without quotes to quit\n"
	msgDone       = "Done. Elapsed: %.5f\n"
	msgFailed     = "Something went wrong, please try again\n"
	msgFilesystem = "The folder or a file in it could not be read or written: %v\n"
	msgDecode     = "An image could not be decoded: %v\n"
	msgEncode     = "A contact sheet could not be written: %v\n"
	msgConfig     = "The settings are invalid: %v\n"
)

var kindMessages = map[contactsheet.Kind]string{
	contactsheet.KindFilesystem: msgFilesystem,
	contactsheet.KindDecode:     msgDecode,
	contactsheet.KindEncode:     msgEncode,
	contactsheet.KindConfig:     msgConfig,
}

var russian = map[string]string{
	msgPrompt:     "Введите путь к папке с изображениями (абсолютный или относительный):\nДля выхода введите \"exit\" без кавычек\n",
	msgDone:       "Готово. Время выполнения: %.5f\n",
	msgFailed:     "Что-то пошло не так, попробуйте еще раз\n",
	msgFilesystem: "Не удалось прочитать или записать папку или файл: %v\n",
	msgDecode:     "Не удалось декодировать изображение: %v\n",
	msgEncode:     "Не удалось записать лист: %v\n",
	msgConfig:     "Неверные настройки: %v\n",
}

// supported lists catalog languages; the first is the fallback.
var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

func init() {
	for key := range russian {
		_ = message.SetString(language.English, key, key)
	}
	for key, text := range russian {
		_ = message.SetString(language.Russian, key, text)
	}
}

// newPrinter returns a printer for lang, or for $LANG when lang is empty.
// An unparsable $LANG selects English; an unparsable lang is an error.
func newPrinter(lang string) (*message.Printer, error) {
	if lang == "" {
		return message.NewPrinter(matchTag(posixLocale(os.Getenv("LANG")))), nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("--lang %q: %w", lang, err)
	}
	return message.NewPrinter(matchTag(tag)), nil
}

// posixLocale parses a POSIX locale such as "ru_RU.UTF-8".
func posixLocale(s string) language.Tag {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.English
	}
	return tag
}

func matchTag(tag language.Tag) language.Tag {
	_, i, _ := matcher.Match(tag)
	return supported[i]
}
