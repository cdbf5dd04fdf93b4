package lang

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/bline/tree2files/share"
)

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func init() {
	bundle = i18n.NewBundle(language.English)
	for tag, messages := range translations {
		langTag, err := language.Parse(tag)
		if err != nil {
			continue
		}
		msgs := make([]*i18n.Message, 0, len(messages))
		for id, other := range messages {
			msgs = append(msgs, &i18n.Message{ID: id, Other: other})
		}
		bundle.AddMessages(langTag, msgs...)
	}
	SetLocale(detectLocale())
}

// T 翻译用户可见的文案，没有对应翻译时原样返回
func T(msgID string) string {
	if localizer == nil {
		return msgID
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: msgID, Other: msgID},
	})
	if err != nil {
		return msgID
	}
	return msg
}

// SetLocale 切换当前语言
func SetLocale(locale string) {
	localizer = i18n.NewLocalizer(bundle, locale, "en")
}

// detectLocale 依次检查环境变量、配置文件和系统区域设置
func detectLocale() string {
	if v := os.Getenv(share.PREFIX + "LANG"); v != "" {
		return v
	}
	if v := configFileLocale(); v != "" {
		return v
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			if i := strings.IndexAny(v, ".@"); i >= 0 {
				v = v[:i]
			}
			return strings.ReplaceAll(v, "_", "-")
		}
	}
	return "en"
}

// configFileLocale 直接读取配置文件取语言项，不依赖 config 包以避免循环引用
func configFileLocale() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	file, err := os.Open(filepath.Join(home, share.PATH, "config"))
	if err != nil {
		return ""
	}
	defer file.Close()

	key := share.PREFIX + "LANG="
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, key) {
			return strings.TrimPrefix(line, key)
		}
	}
	return ""
}
