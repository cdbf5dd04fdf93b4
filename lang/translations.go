package lang

// translations 内置的语言包，键为消息原文
var translations = map[string]map[string]string{
	"zh-CN": {
		"Tree2files command line tool":                              "Tree2files 命令行工具",
		"Create real directories and files from an indented tree diagram": "根据缩进的树形图生成真实的目录和文件",
		"Invalid arguments":    "无效的参数",
		"Work directory path":  "工作目录路径",
		"Debug mode":           "调试模式",
		"Create the structure described by a tree diagram": "根据树形图创建目录结构",
		"Read a tree diagram from a file, a pipe or an editor, then create the corresponding directories and empty files": "从文件、管道或编辑器读取树形图，并创建对应的目录和空文件",
		"Create the top-level children directly, without the root directory": "不创建顶层根目录，直接创建其子项",
		"Print planned operations without touching the filesystem":           "仅打印将要执行的操作，不改动文件系统",
		"Initialize a git repository in the created root":                    "在生成的根目录中初始化 git 仓库",
		"Skip the confirmation prompt":                                       "跳过确认提示",
		"Show a progress bar":                                                "显示进度条",
		"Open an editor to paste the tree text":                              "打开编辑器粘贴树形图文本",
		"Read the tree text interactively":                                   "交互式逐行输入树形图文本",
		"Extract the tree from the first fenced code block":                  "从第一个代码块中提取树形图",
		"Failed to read input":                                               "读取输入失败",
		"Failed to parse input":                                              "解析输入失败",
		"Failed to create entries":                                           "创建文件项失败",
		"No input provided":                                                  "未提供任何输入",
		"Proceed with creation?":                                             "确认开始创建？",
		"Canceled":                                                           "已取消",
		"Initialized git repository":                                         "已初始化 git 仓库",
		"Skipped line %d: %s\n":                                              "已跳过第 %d 行：%s\n",
		"Created %d directories and %d files under %s\n":                     "已创建 %d 个目录和 %d 个文件，位于 %s 下\n",
		"Skipped %d existing files\n":                                        "跳过了 %d 个已存在的文件\n",
		"Dry run, no changes were made":                                      "试运行，未做任何改动",
		"Preview the structure parsed from a tree diagram":                   "预览从树形图解析出的结构",
		"Parse a tree diagram and print the normalized structure without creating anything": "解析树形图并打印规范化后的结构，不创建任何内容",
		"Show directory and file statistics":                                 "显示目录和文件统计信息",
		"Render the preview as markdown in the terminal":                     "在终端中以 Markdown 渲染预览",
		"Output file name":                                                   "输出文件名",
		"Failed to export":                                                   "导出失败",
		"Exported to %s\n":                                                   "已导出到 %s\n",
		"Start the MCP server":                                               "启动 MCP 服务器",
		"Expose tree parsing and scaffolding as MCP tools over stdio, sse or http": "通过 stdio、sse 或 http 将树形图解析与目录生成暴露为 MCP 工具",
		"Transport type (stdio, sse or http)":                                "传输类型（stdio、sse 或 http）",
		"Port for sse or http transport":                                     "sse 或 http 传输使用的端口",
		"Server error":                                                       "服务器错误",
		"Starting MCP server with %s transport\n":                            "正在以 %s 传输启动 MCP 服务器\n",
		"Set config":                                                         "设置配置",
		"Set global configuration":                                           "设置全局配置",
		"List all configurations":                                            "列出所有配置",
		"Current configurations:":                                            "当前配置：",
		"Set language":                                                       "设置语言",
		"Set tree preview render type":                                       "设置树形图预览的渲染方式",
		"Set editor used to paste tree text":                                 "设置粘贴树形图文本所用的编辑器",
		"Print version information":                                          "打印版本信息",
		"Invalid option":                                                     "无效的选项",
		"Error loading config":                                               "加载配置出错",
		"Error saving config":                                                "保存配置出错",
		"tree2files version":                                                 "tree2files 版本",
		"Print detailed version information of tree2files":                   "打印 tree2files 的详细版本信息",
		"Paste the tree text, finish with an empty line":                     "粘贴树形图文本，以空行结束",
	},
	"zh-TW": {
		"Tree2files command line tool":                              "Tree2files 命令列工具",
		"Create real directories and files from an indented tree diagram": "根據縮排的樹形圖產生真實的目錄和檔案",
		"Invalid arguments":    "無效的參數",
		"Work directory path":  "工作目錄路徑",
		"Debug mode":           "除錯模式",
		"Create the structure described by a tree diagram": "根據樹形圖建立目錄結構",
		"Read a tree diagram from a file, a pipe or an editor, then create the corresponding directories and empty files": "從檔案、管線或編輯器讀取樹形圖，並建立對應的目錄和空檔案",
		"Create the top-level children directly, without the root directory": "不建立頂層根目錄，直接建立其子項",
		"Print planned operations without touching the filesystem":           "僅列印將要執行的操作，不變更檔案系統",
		"Initialize a git repository in the created root":                    "在產生的根目錄中初始化 git 儲存庫",
		"Skip the confirmation prompt":                                       "跳過確認提示",
		"Show a progress bar":                                                "顯示進度條",
		"Open an editor to paste the tree text":                              "開啟編輯器貼上樹形圖文字",
		"Read the tree text interactively":                                   "互動式逐行輸入樹形圖文字",
		"Extract the tree from the first fenced code block":                  "從第一個程式碼區塊中擷取樹形圖",
		"Failed to read input":                                               "讀取輸入失敗",
		"Failed to parse input":                                              "解析輸入失敗",
		"Failed to create entries":                                           "建立檔案項失敗",
		"No input provided":                                                  "未提供任何輸入",
		"Proceed with creation?":                                             "確認開始建立？",
		"Canceled":                                                           "已取消",
		"Initialized git repository":                                         "已初始化 git 儲存庫",
		"Skipped line %d: %s\n":                                              "已跳過第 %d 行：%s\n",
		"Created %d directories and %d files under %s\n":                     "已建立 %d 個目錄和 %d 個檔案，位於 %s 下\n",
		"Skipped %d existing files\n":                                        "跳過了 %d 個已存在的檔案\n",
		"Dry run, no changes were made":                                      "試執行，未做任何變更",
		"Preview the structure parsed from a tree diagram":                   "預覽從樹形圖解析出的結構",
		"Parse a tree diagram and print the normalized structure without creating anything": "解析樹形圖並列印正規化後的結構，不建立任何內容",
		"Show directory and file statistics":                                 "顯示目錄和檔案統計資訊",
		"Render the preview as markdown in the terminal":                     "在終端機中以 Markdown 渲染預覽",
		"Output file name":                                                   "輸出檔案名稱",
		"Failed to export":                                                   "匯出失敗",
		"Exported to %s\n":                                                   "已匯出到 %s\n",
		"Start the MCP server":                                               "啟動 MCP 伺服器",
		"Expose tree parsing and scaffolding as MCP tools over stdio, sse or http": "透過 stdio、sse 或 http 將樹形圖解析與目錄產生公開為 MCP 工具",
		"Transport type (stdio, sse or http)":                                "傳輸類型（stdio、sse 或 http）",
		"Port for sse or http transport":                                     "sse 或 http 傳輸使用的連接埠",
		"Server error":                                                       "伺服器錯誤",
		"Starting MCP server with %s transport\n":                            "正在以 %s 傳輸啟動 MCP 伺服器\n",
		"Set config":                                                         "設定配置",
		"Set global configuration":                                           "設定全域配置",
		"List all configurations":                                            "列出所有配置",
		"Current configurations:":                                            "目前配置：",
		"Set language":                                                       "設定語言",
		"Set tree preview render type":                                       "設定樹形圖預覽的渲染方式",
		"Set editor used to paste tree text":                                 "設定貼上樹形圖文字所用的編輯器",
		"Print version information":                                          "列印版本資訊",
		"Invalid option":                                                     "無效的選項",
		"Error loading config":                                               "載入配置出錯",
		"Error saving config":                                                "儲存配置出錯",
		"tree2files version":                                                 "tree2files 版本",
		"Print detailed version information of tree2files":                   "列印 tree2files 的詳細版本資訊",
		"Paste the tree text, finish with an empty line":                     "貼上樹形圖文字，以空行結束",
	},
}
