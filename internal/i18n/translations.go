package i18n

// uiTranslations are the static frontend fallback strings served by
// GET /api/translations/:language_code.
var uiTranslations = map[string]map[string]string{
	"en": {
		"welcome":         "Welcome to HR Assistant",
		"ask_anything":    "Ask me anything about HR...",
		"send":            "Send",
		"quick_actions":   "Quick Actions",
		"agents_online":   "Agents Online",
		"powered_by":      "Powered by",
		"my_payslip":      "My Payslip",
		"leave_balance":   "Leave Balance",
		"my_profile":      "My Profile",
		"clock_in":        "Clock In",
		"my_benefits":     "My Benefits",
		"my_team":         "My Team",
		"performance":     "Performance",
		"policies":        "Policies",
		"select_language": "Select Language",
	},
	"es": {
		"welcome":         "Bienvenido al Asistente de RRHH",
		"ask_anything":    "Pregúntame sobre RRHH...",
		"send":            "Enviar",
		"quick_actions":   "Acciones Rápidas",
		"agents_online":   "Agentes en Línea",
		"powered_by":      "Desarrollado por",
		"my_payslip":      "Mi Nómina",
		"leave_balance":   "Saldo de Vacaciones",
		"my_profile":      "Mi Perfil",
		"clock_in":        "Registrar Entrada",
		"my_benefits":     "Mis Beneficios",
		"my_team":         "Mi Equipo",
		"performance":     "Rendimiento",
		"policies":        "Políticas",
		"select_language": "Seleccionar Idioma",
	},
	"fr": {
		"welcome":         "Bienvenue à l'Assistant RH",
		"ask_anything":    "Posez une question sur les RH...",
		"send":            "Envoyer",
		"quick_actions":   "Actions Rapides",
		"agents_online":   "Agents en Ligne",
		"powered_by":      "Propulsé par",
		"my_payslip":      "Mon Bulletin",
		"leave_balance":   "Solde de Congés",
		"my_profile":      "Mon Profil",
		"clock_in":        "Pointer",
		"my_benefits":     "Mes Avantages",
		"my_team":         "Mon Équipe",
		"performance":     "Performance",
		"policies":        "Politiques",
		"select_language": "Choisir la Langue",
	},
	"ar": {
		"welcome":         "مرحبا بك في مساعد الموارد البشرية",
		"ask_anything":    "اسألني عن الموارد البشرية...",
		"send":            "إرسال",
		"quick_actions":   "إجراءات سريعة",
		"agents_online":   "الوكلاء متصلون",
		"powered_by":      "مدعوم من",
		"my_payslip":      "كشف راتبي",
		"leave_balance":   "رصيد الإجازات",
		"my_profile":      "ملفي الشخصي",
		"clock_in":        "تسجيل الحضور",
		"my_benefits":     "مزاياي",
		"my_team":         "فريقي",
		"performance":     "الأداء",
		"policies":        "السياسات",
		"select_language": "اختر اللغة",
	},
	"zh": {
		"welcome":         "欢迎使用人力资源助手",
		"ask_anything":    "问我任何人力资源问题...",
		"send":            "发送",
		"quick_actions":   "快捷操作",
		"agents_online":   "在线代理",
		"powered_by":      "技术支持",
		"my_payslip":      "我的工资单",
		"leave_balance":   "休假余额",
		"my_profile":      "我的资料",
		"clock_in":        "打卡",
		"my_benefits":     "我的福利",
		"my_team":         "我的团队",
		"performance":     "绩效",
		"policies":        "政策",
		"select_language": "选择语言",
	},
}

// Translations returns the full UI string table for a language code,
// falling back to English for unsupported codes.
func Translations(code string) map[string]string {
	if t, ok := uiTranslations[code]; ok {
		return t
	}
	return uiTranslations[DefaultLanguage]
}

// Translation returns one UI string, falling back to the English value and
// finally to the key itself.
func Translation(code, key string) string {
	if v, ok := Translations(code)[key]; ok {
		return v
	}
	if v, ok := uiTranslations[DefaultLanguage][key]; ok {
		return v
	}
	return key
}
