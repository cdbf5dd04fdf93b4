package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bline/tree2files/config"
	"github.com/bline/tree2files/lang"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: lang.T("Set config"),
	Long:  lang.T("Set global configuration"),
	Run:   handleConfigCommand,
}

var showAllConfigs bool

func init() {
	if config.GetConfig(config.KeyLang) == "" {
		config.SetConfig(config.KeyLang, "en")
	}

	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVarP(&showAllConfigs, "list", "l", false, lang.T("List all configurations"))

	// 通过遍历配置键自动注册所有配置项
	for key, info := range config.ConfigKeys {
		configCmd.Flags().String(key, config.GetConfig(key), lang.T(info.Description))
	}
}

func handleConfigCommand(cmd *cobra.Command, args []string) {
	if err := config.LoadConfig(); err != nil {
		fmt.Println(lang.T("Error loading config")+":", err)
		return
	}

	if showAllConfigs {
		fmt.Println(lang.T("Current configurations:"))
		keys := config.GetAllConfigKeys()
		sort.Strings(keys)
		for _, key := range keys {
			value := config.GetConfig(key)
			if value != "" {
				fmt.Printf("%s=%s\n", config.GetEnvKey(key), value)
			}
		}
		return
	}

	configChanged := false
	for key := range config.ConfigKeys {
		flag := cmd.Flag(key)
		if flag == nil || !flag.Changed {
			continue
		}
		value, _ := cmd.Flags().GetString(key)
		if !config.IsValidConfigOption(key, value) {
			fmt.Printf("%s: %s (%s)\n", lang.T("Invalid option"), value,
				strings.Join(config.GetConfigOptions(key), ", "))
			continue
		}
		config.SetConfig(key, value)
		if key == config.KeyLang {
			lang.SetLocale(value)
		}
		configChanged = true
	}

	if configChanged {
		if err := config.SaveConfig(); err != nil {
			fmt.Println(lang.T("Error saving config")+":", err)
			return
		}
	}
}
