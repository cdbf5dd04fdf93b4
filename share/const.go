package share

// VERSION 版本号
const VERSION = "0.3.2"

// BUILDNAME 制品名称
const BUILDNAME = "tree2files"

const PREFIX = "TREE2FILES_"

const PATH = ".tree2files"

// INDENT_WIDTH 每级缩进的字符宽度
const INDENT_WIDTH = 4

const DIR_MODE = 0o755

const FILE_MODE = 0o644

const SERVER_PORT = 3000

const MCP_SERVER_NAME = "Tree2Files Scaffold Server"
