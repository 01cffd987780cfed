// Package catalog 持有静态参考数据：签位目录、按 vibe 分类的建议素材池、心情集合，
// 以及均匀抽签引擎。数据只读，进程内不会被修改。
// Package catalog holds the static reference data: the fortune-lot catalog,
// the per-vibe recommendation pools, the mood set, and the uniform draw
// engine. The data is read-only and never mutated at runtime.
package catalog

import "oracle/internal/model"

// Vibe 签位的主题类别，决定可用的建议素材池
// Vibe is a lot's thematic category; it selects the eligible pool
type Vibe string

const (
	VibeLuxury    Vibe = "luxury"
	VibeCalm      Vibe = "calm"
	VibeEnergetic Vibe = "energetic"
	VibeSimple    Vibe = "simple"
	VibeSocial    Vibe = "social"
	VibeWisdom    Vibe = "wisdom"
)

// Lots 全部 15 支签，按原始目录顺序排列
// Lots is the full 15-entry catalog in original order
var Lots = []model.Lot{
	{ID: 1, Title: "上上 (Top Fortune)", Description: "如日中天，光芒万丈。今日是能量爆发的一天，勇敢去追求你的目标吧。", Vibe: string(VibeLuxury), LuckyColor: "金色", LuckyNumber: 8, HexColor: "#C5A059"},
	{ID: 2, Title: "大吉 (Great Fortune)", Description: "万事顺遂，贵人相助。你的努力正在得到回报，保持谦逊与感恩。", Vibe: string(VibeLuxury), LuckyColor: "朱红", LuckyNumber: 6, HexColor: "#A65D57"},
	{ID: 3, Title: "中吉 (Good Fortune)", Description: "细水长流，稳中求进。生活节奏恰到好处，适合处理积压已久的事务。", Vibe: string(VibeCalm), LuckyColor: "天蓝", LuckyNumber: 3, HexColor: "#8DA9C4"},
	{ID: 4, Title: "小吉 (Small Fortune)", Description: "微风拂面，惬意自得。在细微之处发现美好，今日宜与老友叙旧。", Vibe: string(VibeSimple), LuckyColor: "草绿", LuckyNumber: 5, HexColor: "#94A684"},
	{ID: 5, Title: "吉 (Fortune)", Description: "平淡是真，顺其自然。不需要刻意追求，好运往往在不经意间降临。", Vibe: string(VibeSimple), LuckyColor: "米白", LuckyNumber: 7, HexColor: "#D6D2C4"},
	{ID: 6, Title: "平安 (Peace)", Description: "岁月静好，现世安稳。今日宜静心养神，远离喧嚣，关注内心世界。", Vibe: string(VibeCalm), LuckyColor: "珍珠灰", LuckyNumber: 2, HexColor: "#B4B4B4"},
	{ID: 7, Title: "喜 (Joy)", Description: "喜上眉梢，好事将近。可能会收到令人振奋的消息，分享你的快乐吧。", Vibe: string(VibeSocial), LuckyColor: "亮橙", LuckyNumber: 9, HexColor: "#D99879"},
	{ID: 8, Title: "缘 (Fate)", Description: "众里寻他，蓦然回首。今日会有奇妙的邂逅，或是与旧识重逢。", Vibe: string(VibeSocial), LuckyColor: "藕粉", LuckyNumber: 1, HexColor: "#C9ADA7"},
	{ID: 9, Title: "悟 (Wisdom)", Description: "灵光一现，豁然开朗。困扰已久的问题将找到答案，智慧之门已开启。", Vibe: string(VibeWisdom), LuckyColor: "玄青", LuckyNumber: 0, HexColor: "#4A5D5E"},
	{ID: 10, Title: "闲 (Leisure)", Description: "偷得浮生半日闲。放下手中的忙碌，给自己一个彻底放松的机会。", Vibe: string(VibeCalm), LuckyColor: "茶褐", LuckyNumber: 4, HexColor: "#8C7867"},
	{ID: 11, Title: "忙 (Productivity)", Description: "天道酬勤，不负韶华。今日是高效产出的一天，你的才华将得到施展。", Vibe: string(VibeEnergetic), LuckyColor: "藏蓝", LuckyNumber: 11, HexColor: "#546A7B"},
	{ID: 12, Title: "财 (Wealth)", Description: "财源广进，富贵吉祥。可能会有意外的财务收益，理财需谨慎。", Vibe: string(VibeLuxury), LuckyColor: "琥珀", LuckyNumber: 88, HexColor: "#B58D3D"},
	{ID: 13, Title: "健 (Health)", Description: "身强体健，元气满满。今日宜流汗运动，唤醒身体的每一个细胞。", Vibe: string(VibeEnergetic), LuckyColor: "荧光绿", LuckyNumber: 24, HexColor: "#8F9779"},
	{ID: 14, Title: "慧 (Insight)", Description: "洞察秋毫，明辨是非。你的直觉非常敏锐，相信你的第一判断。", Vibe: string(VibeWisdom), LuckyColor: "墨黑", LuckyNumber: 13, HexColor: "#444444"},
	{ID: 15, Title: "梦 (Dream)", Description: "心之所向，素履以往。不要害怕做梦，梦想是引领你前行的灯塔。", Vibe: string(VibeWisdom), LuckyColor: "薰衣草紫", LuckyNumber: 99, HexColor: "#9A8C98"},
}
