package llm

// Log prefixes
const (
	LogPrefixRouteQuery = "internal.llm.RouteQuery"
	LogPrefixGenerate   = "internal.llm.GenerateResponse"
)

// Routing prompt. The model must answer with a single JSON object.
const promptRouting = `You are an HR assistant router. Analyze the user's query and determine which specialized agent should handle it.

Available agents:
1. PAYSLIP - Handles salary, payslips, pay, income, deductions, tax, earnings, compensation, money earned
2. LEAVE - Handles vacation, time off, PTO, sick leave, annual leave, personal leave, absence, leave balance, holiday requests
3. EMPLOYEE - Handles employee profile, team members, department info, manager info, coworkers, personal details, "who am I"
4. ATTENDANCE - Handles clock in/out, check in/out, work hours, overtime, attendance records, schedule, punctuality, late arrivals
5. BENEFITS - Handles health insurance, 401k, retirement, dental, vision, wellness programs, benefits enrollment, medical coverage
6. PERFORMANCE - Handles performance reviews, ratings, goals, KPIs, feedback, evaluations, appraisals, objectives
7. POLICY - Handles HR policies, company rules, guidelines, WFH policy, dress code, FAQs, code of conduct
8. GENERAL - For greetings (hello, hi), help requests, and general HR questions that don't fit specific categories

User query: "%s"

Respond ONLY with a valid JSON object in this exact format (no markdown, no explanation):
{"agent": "AGENT_NAME", "intent": "brief description of what user wants", "confidence": 0.95}

Choose the most appropriate agent based on the user's intent. Use GENERAL only for greetings or if truly uncertain.`

// Generation prompt. Context data is serialized JSON.
const promptGenerate = `%s

You are the %s for an HR Management System. Generate a helpful, friendly response to the user's query.
%s
Important guidelines:
- Use markdown formatting for better readability
- Use tables when presenting structured data
- Use emojis sparingly to make responses engaging
- Be concise but thorough
- Format currency values properly (e.g., $1,234.56)
- Format dates in a readable way (e.g., December 5, 2024)
- If data is available, present it clearly
- If data is not available for what they asked, explain what IS available
- Consider the conversation history for context when answering follow-up questions
%s
User Query: "%s"

Available Data:
%s

Generate a natural, helpful response based on this data:`

// Routing configuration
const (
	RoutingTemperature = 0.1

	FallbackAgent      = "GENERAL"
	FallbackIntent     = "unknown"
	FallbackConfidence = 0.5
)
