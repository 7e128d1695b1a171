package llm

import "strings"

// systemInstruction is the fixed instruction sent with every structuring
// request. Output-only-JSON plus the closed category list keeps the
// response machine-parseable at low temperature.
const systemInstruction = `You are a financial receipt structuring engine. You receive raw OCR text from a photographed receipt or bank-app screenshot and output the transaction it describes.

You MUST respond with ONLY a valid JSON object. Do not include any explanatory text, markdown formatting, or commentary before or after the JSON. Start your response directly with { and end with }.

The JSON object must have exactly these fields:
- "date": string "YYYY-MM-DD" or null if no date is visible
- "type": "in" for money received, "out" for money spent
- "category": exactly one of: shopping, rent, utility, grocery, dining, transportation, entertainment, health, income, fees, transfers, education, other
- "sub_category": lowercase merchant short name (max 60 characters) or null
- "amount": the transaction total as a positive number
- "note": a short free-text detail or null

Prefer the final total over subtotals and line items. If the text is a bank-app screenshot, the signed or labelled amount is the transaction amount.`

// Example is one few-shot request/response pair included in every prompt.
type Example struct {
	Input  string
	Output string
}

// FewShotExamples returns the four fixed example pairs. They double as
// round-trip fixtures: feeding an example's input through the pipeline with
// a faithful backend must reproduce the example's output fields.
func FewShotExamples() []Example {
	return []Example{
		{
			Input:  "STARBUCKS STORE #4821\n123 Main St\nFri, Sep 19, 2025\nGrande Latte 5.75\nTotal $5.75\nVISA ****1234",
			Output: `{"date":"2025-09-19","type":"out","category":"dining","sub_category":"starbucks","amount":5.75,"note":"grande latte"}`,
		},
		{
			Input:  "Chequing Account\nACME CORP PAYROLL\nPayment received\nSep 15, 2025\n+$2,450.00\nBalance $3,104.22",
			Output: `{"date":"2025-09-15","type":"in","category":"income","sub_category":"acme corp","amount":2450,"note":"payroll deposit"}`,
		},
		{
			Input:  "WALMART SUPERCENTER\n19/09/2025\nMilk 4.29\nBread 2.99\nSUBTOTAL 39.90\nTOTAL $42.18",
			Output: `{"date":"2025-09-19","type":"out","category":"grocery","sub_category":"walmart","amount":42.18,"note":null}`,
		},
		{
			Input:  "City Power & Light\nAccount 00318-2\nAmount due: $96.40\nThank you for your payment",
			Output: `{"date":null,"type":"out","category":"utility","sub_category":"city power & light","amount":96.4,"note":"amount due"}`,
		},
	}
}

// buildMessages assembles the few-shot turns plus the caller's OCR text in
// a delimited user turn.
func buildMessages(ocrText string) []Message {
	examples := FewShotExamples()
	messages := make([]Message, 0, len(examples)*2+1)

	for _, ex := range examples {
		messages = append(messages,
			Message{Role: "user", Content: wrapOCRText(ex.Input)},
			Message{Role: "assistant", Content: ex.Output},
		)
	}

	return append(messages, Message{Role: "user", Content: wrapOCRText(ocrText)})
}

func wrapOCRText(text string) string {
	var b strings.Builder
	b.WriteString("OCR TEXT:\n<<<\n")
	b.WriteString(text)
	b.WriteString("\n>>>")
	return b.String()
}
