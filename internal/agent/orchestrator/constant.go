package orchestrator

// RoutingThreshold is the minimum LLM classification confidence accepted
// before keyword routing takes over. Deliberately equal to the gateway's
// fallback confidence so a degraded LLM decision is still honored as
// GENERAL rather than re-routed.
const RoutingThreshold = 0.5

const generalSystemContext = "You are the main HR Assistant. Answer general HR questions or guide users to ask about specific topics like payslips, leave, attendance, benefits, or their profile."

var greetingKeywords = []string{"hello", "hi", "hey", "good morning", "good afternoon", "greetings"}

var helpKeywords = []string{"help", "what can you do", "how can you help", "options", "commands"}

// capabilities is the summary handed to the LLM for general queries.
var capabilities = map[string]string{
	"Payslip Agent":    "Salary info, payslips, deductions, tax breakdown",
	"Leave Agent":      "Leave balance, vacation requests, PTO tracking",
	"Employee Agent":   "Profile, team members, department info",
	"Attendance Agent": "Clock in/out, work hours, overtime",
	"Benefits Agent":   "Health insurance, 401k, wellness programs",
}

const greetingCardAI = `👋 **%s**

I'm your HR Assistant 🧠 **AI-Powered**

I use **Gemini 2.5 Flash** to understand your requests naturally. Just ask me anything!

**What I can help you with:**
- 💰 **Payslip** - Salary, deductions, tax info
- 📅 **Leave** - Balance, requests, history
- 👤 **Profile** - Your info, team, department
- ⏰ **Attendance** - Clock in/out, hours
- 🎁 **Benefits** - Insurance, 401k, wellness

How can I assist you today? 🚀`

const greetingCardKeyword = `👋 **%s**

I'm your HR Assistant 📋 **Keyword-Based**

I can help you with HR tasks using keyword matching.

**What I can help you with:**
- 💰 **Payslip** - Salary, deductions, tax info
- 📅 **Leave** - Balance, requests, history
- 👤 **Profile** - Your info, team, department
- ⏰ **Attendance** - Clock in/out, hours
- 🎁 **Benefits** - Insurance, 401k, wellness

How can I assist you today? 🚀`

const helpCardAI = `🤖 **HR Assistant - Help**

**Powered by Gemini 2.5 Flash** - Ask naturally, I'll understand!

### 💬 Example Questions

| Topic | Try Asking |
|-------|------------|
| 💰 Pay | "Show my payslip", "What's my salary?" |
| 📅 Leave | "How many days off do I have?", "Leave balance" |
| 👤 Profile | "Tell me about myself", "Who's on my team?" |
| ⏰ Time | "Clock in", "How many hours this week?" |
| 🎁 Benefits | "What insurance do I have?", "401k details" |

Just type your question! 💬`

const helpCardKeyword = `🤖 **HR Assistant - Help**

Using keyword-based matching.

### 💬 Example Questions

| Topic | Try Asking |
|-------|------------|
| 💰 Pay | "Show my payslip", "What's my salary?" |
| 📅 Leave | "How many days off do I have?", "Leave balance" |
| 👤 Profile | "Tell me about myself", "Who's on my team?" |
| ⏰ Time | "Clock in", "How many hours this week?" |
| 🎁 Benefits | "What insurance do I have?", "401k details" |

Just type your question! 💬`

const fallbackCard = `🤔 **I'm not sure how to help with that**

I couldn't understand: *"%s"*

**Try asking about:**
- 💰 Payslip & salary
- 📅 Leave & time off
- 👤 Your profile & team
- ⏰ Attendance & hours
- 🎁 Benefits & insurance

Type **"help"** for more examples!`
