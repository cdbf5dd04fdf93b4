package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bline/tree2files/config"
)

func TestGetConfig(t *testing.T) {
	// 设置临时测试目录
	tmpDir := t.TempDir()
	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	// 清除和设置测试环境变量
	os.Unsetenv("TREE2FILES_LANG")
	os.Unsetenv("TREE2FILES_EDITOR")
	os.Unsetenv("EDITOR") // 非前缀键

	os.Setenv("TREE2FILES_LANG", "zh")
	os.Setenv("TREE2FILES_EDITOR", "vim")
	os.Setenv("EDITOR", "nano") // 测试非前缀的直接环境变量

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "使用简短键获取语言",
			key:      "lang",
			expected: "zh",
		},
		{
			name:     "使用环境变量键获取语言",
			key:      "TREE2FILES_LANG",
			expected: "zh",
		},
		{
			name:     "使用简短键获取编辑器",
			key:      "editor",
			expected: "vim",
		},
		{
			name:     "使用环境变量键获取编辑器",
			key:      "TREE2FILES_EDITOR",
			expected: "vim",
		},
		{
			name:     "获取不存在的配置",
			key:      "nonexistent",
			expected: "",
		},
		{
			name:     "直接获取非前缀环境变量",
			key:      "EDITOR",
			expected: "nano",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.GetConfig(tt.key); got != tt.expected {
				t.Errorf("GetConfig() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetConfigWithDefault(t *testing.T) {
	tmpDir := t.TempDir()
	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	config.ClearAllConfig()

	os.Setenv("TREE2FILES_LANG", "zh")

	tests := []struct {
		name         string
		key          string
		defaultValue string
		expected     string
	}{
		{
			name:         "获取存在的配置",
			key:          "lang",
			defaultValue: "en",
			expected:     "zh",
		},
		{
			name:         "获取不存在的配置，返回默认值",
			key:          "nonexistent",
			defaultValue: "default-value",
			expected:     "default-value",
		},
		{
			name:         "获取空配置，返回默认值",
			key:          "empty",
			defaultValue: "default-for-empty",
			expected:     "default-for-empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.GetConfigWithDefault(tt.key, tt.defaultValue); got != tt.expected {
				t.Errorf("GetConfigWithDefault() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConfigOperations(t *testing.T) {
	tmpDir := t.TempDir()
	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	config.ClearAllConfig()

	tests := []struct {
		name     string
		configs  map[string]string
		wantErr  bool
		validate func(t *testing.T)
	}{
		{
			name: "基本配置保存和加载",
			configs: map[string]string{
				"TREE2FILES_LANG":   "zh",
				"TREE2FILES_EDITOR": "vim",
			},
			wantErr: false,
			validate: func(t *testing.T) {
				// 重新加载配置
				if err := config.LoadConfig(); err != nil {
					t.Fatalf("加载配置失败: %v", err)
				}

				if v := config.GetConfig("lang"); v != "zh" {
					t.Errorf("lang 期望为 zh，实际为 %s", v)
				}
				if v := config.GetConfig("editor"); v != "vim" {
					t.Errorf("editor 期望为 vim，实际为 %s", v)
				}
			},
		},
		{
			name:    "空配置",
			configs: map[string]string{},
			wantErr: false,
			validate: func(t *testing.T) {
				if v := config.GetConfig("lang"); v != "" {
					t.Errorf("期望配置为空，实际为 %s", v)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.ClearAllConfig()

			for k, v := range tt.configs {
				config.SetConfig(k, v)
			}

			if err := config.SaveConfig(); (err != nil) != tt.wantErr {
				t.Errorf("SaveConfig() error = %v, wantErr %v", err, tt.wantErr)
			}

			config.ClearAllConfig()

			if err := config.LoadConfig(); (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}

			tt.validate(t)

			// 验证文件内容
			if !tt.wantErr {
				content, err := os.ReadFile(filepath.Join(tmpDir, ".tree2files", "config"))
				if err != nil {
					t.Errorf("读取配置文件失败: %v", err)
				}
				if len(content) == 0 && len(tt.configs) > 0 {
					t.Error("配置文件不应为空")
				}
			}
		})
	}
}
