package i18n

// ZhCNMessages 简体中文消息目录
// ZhCNMessages Simplified Chinese message catalog
var ZhCNMessages = map[string]string{
	// 应用
	"app.title":    "今日官人",
	"app.subtitle": "陪你过好这一天的小占卜",

	// 抽签
	"draw.prompt":  "按回车摇签，抽取今日运势",
	"draw.shaking": "签筒摇动中……",

	// 结果
	"result.lucky":  "幸运色: %s · 幸运数字: %d",
	"result.hint":   "回车查看今日指引",
	"result.redraw": "r 重新摇签",

	// 心情
	"mood.title": "此刻的心情是？",
	"mood.hint":  "←/→ 选择，回车确认",

	// 加载
	"loading.insight": "正在连接星辰……",
	"loading.report":  "正在撰写成长报告……",

	// 仪表盘标签页
	"tab.oracle":  "今日签",
	"tab.todo":    "待办",
	"tab.review":  "复盘",
	"tab.history": "历史",

	// 今日签面板
	"oracle.interpretation":        "今日解读",
	"oracle.recommendation":        "今日四宜",
	"oracle.rec_eat":               "宜食",
	"oracle.rec_wear":              "宜穿",
	"oracle.rec_use":               "宜用",
	"oracle.rec_action":            "宜做",
	"oracle.intention_placeholder": "向官人许个愿…… (回车重新解读)",
	"oracle.no_recommendation":     "暂无四宜建议——通道拥挤，可以许个愿再试",

	// 待办面板
	"todo.placeholder": "为今天加一件小事……",
	"todo.empty":       "今天还没有安排",
	"todo.done_at":     "完成于 %s · %s",
	"todo.hint":        "空格 勾选 · d 删除 · m 改心情",

	// 复盘面板
	"review.placeholder": "写几句今天的感悟……",
	"review.progress":    "今日待办完成 %d/%d",
	"review.generate":    "g 生成成长报告",
	"review.no_report":   "还没有报告",
	"review.report":      "成长报告",

	// 历史面板
	"history.title": "日历",
	"history.empty": "这一天没有记录",
	"history.hint":  "←/→ 日 · ↑/↓ 周 · [ ] 月",

	// 状态与错误
	"status.saved_warning": "历史保存失败: %s",
	"error.provider":       "模型服务错误: %s",
	"error.config":         "配置错误: %s",

	// 快捷键
	"keys.tabs":  "1-4 标签页",
	"keys.reset": "ctrl+r 重来",
	"keys.quit":  "ctrl+c 退出",

	// REPL
	"repl.welcome":        "今日官人已启动 (数据目录: %s)",
	"repl.mode":           "REPL 模式运行中 (使用 --tui 启用完整 TUI)",
	"repl.help":           "输入 /help 查看命令",
	"repl.unknown":        "未知命令: %s",
	"repl.bye":            "保重。",
	"cmd.draw":            "抽取今日运势签",
	"cmd.mood":            "选择心情 (happy/calm/tired/energetic/sad)",
	"cmd.wish":            "带着意愿重新解读",
	"cmd.todo":            "管理今日待办 (add/done/rm/list)",
	"cmd.review":          "写下今日感悟",
	"cmd.report":          "生成成长报告",
	"cmd.history":         "查看某天的记录",
	"cmd.reset":           "回到摇签",
	"cmd.help":            "显示可用命令",
	"cmd.exit":            "退出应用",
	"repl.need_draw":      "请先摇签 (/draw)",
	"repl.need_mood":      "请先选择心情 (/mood)",
	"repl.todo_added":     "已添加: %s",
	"repl.todo_none":      "没有匹配 %q 的待办",
	"repl.no_entry":       "%s 没有记录",
	"repl.mood_values":    "心情可选: happy calm tired energetic sad",
	"repl.input_fallback": "行编辑不可用，已退回基础输入: %s",
}
