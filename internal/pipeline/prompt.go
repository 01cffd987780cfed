package pipeline

import (
	"fmt"
	"strings"

	"oracle/internal/catalog"
	"oracle/internal/model"
)

// systemPersona 两条管线共用的角色设定
// systemPersona is the persona shared by both pipelines
const systemPersona = "你是一位现代禅意占卜师。"

// reflectionPromptBudget 成长报告提示词的 token 预算；超出时截断任务列表
// reflectionPromptBudget caps the reflection prompt; the todo listing is
// truncated when the rendered prompt would exceed it
const reflectionPromptBudget = 3000

// buildInsightPrompt 构建灵感解读提示词：签位 + 心情 +（可选）意愿 + 素材池风格示例
// buildInsightPrompt builds the insight prompt: lot + mood + optional
// intention + one pool entry as a style seed
func buildInsightPrompt(lot model.Lot, mood model.MoodID, intention string, seed *model.Recommendation) string {
	var b strings.Builder

	moodLabel := catalog.MoodLabel(mood)
	fmt.Fprintf(&b, "用户抽到了签位：%s，描述为：%s。用户当下的心情是：%s。\n", lot.Title, lot.Description, moodLabel)

	if intention = strings.TrimSpace(intention); intention != "" {
		fmt.Fprintf(&b, "用户表达了特别的意愿或目标：%s。请务必结合这个意愿来调整解读和建议。\n", intention)
	}

	b.WriteString(`请根据这些信息，为用户生成：
1. 一段100字以内的深度灵感解读（interpretation）。
2. 四个类别的具体建议：食（eat）、穿（wear）、用（use）、行（action）。

风格要求：
- 语言风格：日常、简短、生活化，像朋友间的随口建议。
- 标题（title）：极其简短，3-5个字。
- 描述（description）：50字以内，具体且有生活气息。
`)

	if seed != nil {
		fmt.Fprintf(&b, "\n风格参考示例（请勿照抄，仅体会语感）：食「%s」、穿「%s」、用「%s」、行「%s」。\n",
			seed.Eat.Title, seed.Wear.Title, seed.Use.Title, seed.Action.Title)
	}

	b.WriteString(`
请以 JSON 格式返回，结构如下：
{
  "interpretation": "...",
  "recommendation": {
    "eat": { "title": "...", "description": "..." },
    "wear": { "title": "...", "description": "..." },
    "use": { "title": "...", "description": "..." },
    "action": { "title": "...", "description": "..." }
  }
}`)

	return b.String()
}

// buildReflectionPrompt 构建成长报告提示词。任务列表在 token 预算内渲染，
// 超出部分截断并注明省略数量。
// buildReflectionPrompt builds the growth-report prompt. The todo listing is
// rendered within the token budget; overflow is truncated with an ellipsis
// note.
func buildReflectionPrompt(day DayContext, tok *Tokenizer) string {
	lotTitle, lotDesc := "未抽签", ""
	if day.Lot != nil {
		lotTitle, lotDesc = day.Lot.Title, day.Lot.Description
	}

	head := fmt.Sprintf(`请根据以下信息，为用户提供一份极具针对性的“灵魂成长报告”。

【今日背景】
- 签位启示：%s (%s)
- 核心心情：%s

【行动轨迹】
`, lotTitle, lotDesc, catalog.MoodLabel(day.Mood))

	tail := fmt.Sprintf(`

【内心独白】
"%s"

【复盘要求】
1. 拒绝空话：必须直接引用或针对“行动轨迹”中的具体任务和“内心独白”中的具体词句进行分析。
2. 深度共情：如果任务完成得好，请给予真诚且具体的鼓励；如果任务未完成或感悟中带有负面情绪，请给予温柔的化解和支持。
3. 能量总结：分析今天的能量是散乱的、专注的、还是处于转折点。
4. 明日微光：给出一个与今天经历紧密相关的、极其具体的明天小建议。

【格式规范】
- 纯文本格式，绝对禁止使用任何 Markdown 符号（如 *、#、-、>、[ ] 等）。
- 严禁使用星号（*）加粗。
- 字数控制在150-200字之间。
- 结尾处加上一个独特的、与今日主题相关的禅意落款。`, day.Reflection)

	lines := renderTodoLines(day.Todos)
	budget := reflectionPromptBudget - tok.CountText(head) - tok.CountText(tail)

	var list strings.Builder
	used := 0
	for i, line := range lines {
		cost := tok.CountText(line) + 1
		if used+cost > budget && i > 0 {
			fmt.Fprintf(&list, "……（其余 %d 项略）\n", len(lines)-i)
			break
		}
		list.WriteString(line)
		list.WriteByte('\n')
		used += cost
	}

	return head + list.String() + tail
}

// renderTodoLines 将任务渲染为带完成状态/时间/心情标注的行
// renderTodoLines renders todos as lines annotated with completion
// state, time, and mood
func renderTodoLines(todos []model.Todo) []string {
	lines := make([]string, 0, len(todos))
	for _, t := range todos {
		if !t.Completed {
			lines = append(lines, fmt.Sprintf("[未完成] %s", t.Text))
			continue
		}
		completionTime := t.CompletionTime
		if completionTime == "" {
			completionTime = "未记录"
		}
		mood := "未记录"
		if t.CompletionMood != "" {
			mood = catalog.MoodLabel(t.CompletionMood)
		}
		lines = append(lines, fmt.Sprintf("[已完成] %s (完成时间: %s, 完成心情: %s)", t.Text, completionTime, mood))
	}
	return lines
}
