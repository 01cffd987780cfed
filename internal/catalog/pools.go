package catalog

import "oracle/internal/model"

// Pools 按 vibe 分类的建议素材池。素材只作为 AI 提示词的风格示例与兜底内容，
// 不参与核心契约。
// Pools are the per-vibe recommendation pools. Entries serve only as prompt
// seed material and fallback content; the core contracts do not depend on them.
var Pools = map[Vibe][]model.Recommendation{
	VibeLuxury: {
		{
			Eat:    model.RecommendationDetail{Title: "和牛烧肉或米其林星级料理", Description: "高品质的蛋白质能为你提供充沛的动力，犒劳辛勤工作的自己，享受味蕾的极致盛宴。"},
			Wear:   model.RecommendationDetail{Title: "剪裁利落的红色系单品", Description: "红色象征着力量与自信，利落的剪裁能瞬间提升气场，让你在任何场合都成为焦点。"},
			Use:    model.RecommendationDetail{Title: "一支昂贵的钢笔", Description: "笔尖划过纸张的质感能让你冷静思考，今日适合签下重要的契约或记录下宏大的愿景。"},
			Action: model.RecommendationDetail{Title: "预订一次高端SPA", Description: "让身体在极致的呵护中彻底放松，为接下来的挑战积蓄能量。"},
		},
		{
			Eat:    model.RecommendationDetail{Title: "黑松露意面配顶级红酒", Description: "浓郁的香气与醇厚的口感交织，这是属于你的奢华时刻。"},
			Wear:   model.RecommendationDetail{Title: "质感上乘的丝绸衬衫", Description: "丝滑的触感能抚平内心的躁动，低调的奢华感最能衬托你今日温润如玉的气质。"},
			Use:    model.RecommendationDetail{Title: "那瓶珍藏已久的红酒", Description: "在微醺中回顾近期的收获，酒精的芬芳能激发你对未来的更多灵感与期待。"},
			Action: model.RecommendationDetail{Title: "参观一场私人艺术展", Description: "在艺术的熏陶中提升审美，寻找生活与事业的新灵感。"},
		},
	},
	VibeCalm: {
		{
			Eat:    model.RecommendationDetail{Title: "温润养胃的小米粥", Description: "清淡的饮食能减轻身体的负担，温热的粥品能由内而外地温暖你的身心。"},
			Wear:   model.RecommendationDetail{Title: "素雅的莫兰迪色系", Description: "低饱和度的色彩能营造出一种高级的宁静感，让你在视觉上和心理上都感到平和。"},
			Use:    model.RecommendationDetail{Title: "瑜伽垫", Description: "通过呼吸与拉伸与身体对话，在静谧的氛围中找回内心的平衡与力量。"},
			Action: model.RecommendationDetail{Title: "进行一场深度冥想", Description: "闭上双眼，感受呼吸的律动，让杂乱的思绪在静默中沉淀。"},
		},
		{
			Eat:    model.RecommendationDetail{Title: "中式下午茶", Description: "一壶清茶，几块点心，在茶香袅袅中感受时光的流逝，享受这份难得的静谧。"},
			Wear:   model.RecommendationDetail{Title: "宽松舒适的居家服", Description: "摆脱束缚，让身体彻底放松，这种无拘无束的状态能让你更好地恢复元气。"},
			Use:    model.RecommendationDetail{Title: "一个舒适的靠枕", Description: "找一个阳光充足的角落，靠在柔软的枕头上，沉浸在书本的世界里忘却烦恼。"},
			Action: model.RecommendationDetail{Title: "整理书架或桌面", Description: "在有序的整理中找回掌控感，清空物理空间的同时也清空心理负担。"},
		},
	},
	VibeEnergetic: {
		{
			Eat:    model.RecommendationDetail{Title: "牛排能量碗", Description: "均衡的营养搭配和充足的热量能支撑你高强度的工作，让你始终保持最佳状态。"},
			Wear:   model.RecommendationDetail{Title: "干练的职场通勤装", Description: "职业化的着装能给你带来心理暗示，让你在处理事务时更加果断、高效且专业。"},
			Use:    model.RecommendationDetail{Title: "降噪耳机", Description: "隔绝外界的干扰，创造一个属于自己的专注空间，今日的产出将超乎你的想象。"},
			Action: model.RecommendationDetail{Title: "完成一项拖延已久的任务", Description: "利用今日的高能量状态，攻克那个最难的关卡，享受成就感带来的多巴胺。"},
		},
		{
			Eat:    model.RecommendationDetail{Title: "高蛋白鸡胸肉料理", Description: "为肌肉提供必要的修复养分，清淡的调味能让你更好地感受食材本来的鲜美。"},
			Wear:   model.RecommendationDetail{Title: "专业运动装备", Description: "良好的支撑与排汗性能能让你在运动中更加自如，鲜艳的色彩则能激发你的运动热情。"},
			Use:    model.RecommendationDetail{Title: "智能手表", Description: "实时监测你的心率与消耗，让运动变得科学且有成就感，见证身体的每一次进步。"},
			Action: model.RecommendationDetail{Title: "尝试一次高强度间歇训练(HIIT)", Description: "挑战体能极限，让汗水带走压力，唤醒沉睡的身体潜能。"},
		},
	},
	VibeSimple: {
		{
			Eat:    model.RecommendationDetail{Title: "清爽的越南河粉", Description: "简单的食材往往蕴含着最纯粹的美味，清淡的汤底能让你的肠胃得到彻底的放松。"},
			Wear:   model.RecommendationDetail{Title: "白T恤与牛仔裤", Description: "最简单的搭配往往最能经受时间的考验，这种随性自在的状态正是你今日魅力的源泉。"},
			Use:    model.RecommendationDetail{Title: "一张手写明信片", Description: "在这个数字化时代，手写的文字更显珍贵，将你的思念与祝福寄给远方的亲友吧。"},
			Action: model.RecommendationDetail{Title: "去公园散步半小时", Description: "呼吸新鲜空气，观察路边的花草，在自然中找回最本真的快乐。"},
		},
		{
			Eat:    model.RecommendationDetail{Title: "手工全麦面包配果酱", Description: "天然的麦香与酸甜的果酱，开启简单而充实的一天。"},
			Wear:   model.RecommendationDetail{Title: "柔软的棉麻长裙/长裤", Description: "天然材质的呼吸感让你感到前所未有的自由与舒适。"},
			Use:    model.RecommendationDetail{Title: "一个极简风格的帆布袋", Description: "装下必需品，轻装上阵，生活本就不该被繁琐所累。"},
			Action: model.RecommendationDetail{Title: "关闭手机通知一小时", Description: "享受一段不被打扰的时光，重新夺回对注意力的控制权。"},
		},
	},
	VibeSocial: {
		{
			Eat:    model.RecommendationDetail{Title: "韩式部队锅", Description: "热气腾腾的火锅最适合多人围坐，在分享美食的过程中拉近彼此的心灵距离。"},
			Wear:   model.RecommendationDetail{Title: "精致的耳环或项链", Description: "细节处的点缀能展现你的品味，在不经意间吸引那个与你有缘的人的目光。"},
			Use:    model.RecommendationDetail{Title: "心理学书籍", Description: "深入了解人际互动的奥秘，能让你在今日的社交场合中更加游盈有余，把握缘分。"},
			Action: model.RecommendationDetail{Title: "主动联系一位久未谋面的老友", Description: "一声简单的问候可能开启一段温暖的回忆，重拾那些珍贵的友谊。"},
		},
		{
			Eat:    model.RecommendationDetail{Title: "色彩缤纷的水果蛋糕", Description: "甜食能迅速提升多巴胺水平，缤纷的色彩则预示着今日生活的多姿多彩。"},
			Wear:   model.RecommendationDetail{Title: "带有印花元素的单品", Description: "活泼的印花能表达你内心的喜悦，让周围的人也能感受到你传递出的积极能量。"},
			Use:    model.RecommendationDetail{Title: "蓝牙音箱", Description: "调高音量，让欢快的旋律充满整个房间，今日适合举办一场小型的庆祝派对。"},
			Action: model.RecommendationDetail{Title: "参加一个感兴趣的线下工作坊", Description: "在学习新技能的同时结交志同道合的朋友，拓宽你的社交圈。"},
		},
	},
	VibeWisdom: {
		{
			Eat:    model.RecommendationDetail{Title: "黑巧克力", Description: "微苦的滋味能让你保持清醒，丰富的抗氧化成分则能为你的大脑提供充足的养分。"},
			Wear:   model.RecommendationDetail{Title: "深蓝色套装", Description: "蓝色代表着理智与深邃，这种稳重的穿搭能让你在思考时更具逻辑感与说服力。"},
			Use:    model.RecommendationDetail{Title: "思维导图工具", Description: "将脑海中闪现的灵感碎片系统化，你会惊讶地发现那些原本复杂的问题竟如此简单。"},
			Action: model.RecommendationDetail{Title: "复盘过去一周的得失", Description: "在总结中发现规律，在反思中获得成长，智慧往往源于对经验的深度加工。"},
		},
		{
			Eat:    model.RecommendationDetail{Title: "清淡的素食料理", Description: "纯净的饮食能让你的头脑更加清明，在咀嚼中感受大自然的馈赠与生命的宁静。"},
			Wear:   model.RecommendationDetail{Title: "极简风格黑白配", Description: "经典的色彩搭配能减少视觉干扰，让你看起来更加睿智且富有深度，不被表象所惑。"},
			Use:    model.RecommendationDetail{Title: "望远镜", Description: "拓宽你的视野，从宏观的角度审视生活，你会发现许多原本被忽略的细节与真相。"},
			Action: model.RecommendationDetail{Title: "阅读一本深奥的哲学或科学书籍", Description: "挑战思维的边界，与伟大的灵魂对话，在知识的海洋中寻找生命的真谛。"},
		},
	},
}
