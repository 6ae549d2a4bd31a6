// Package prompts holds the instruction templates sent to the extraction model.
// The field list must stay in sync with service.Extraction: the model is told to
// emit exactly these keys and the parser fills "Not Specified" for any it omits.
package prompts

// ExtractionSystemPrompt defines the role and output contract for job-posting
// field extraction.
const ExtractionSystemPrompt = `You are an expert at extracting job posting details from unstructured text.
You always answer with a single valid JSON object and nothing else. Do not include
any markdown formatting or code fences.`

// ExtractionUserPrompt is the instruction template; the raw posting text is
// appended after it.
const ExtractionUserPrompt = `Extract the following fields from the job posting below, exactly as JSON:
- "company_name": The name of the company.
- "offer_type": Type of offer (e.g., FTE, Intern, PPO, intern + FTE, intern + PPO).
- "stipend": Stipend amount if mentioned, else "Not Specified".
- "ctc": CTC amount if mentioned, else "Not Specified".
- "eligibility": Eligibility criteria (e.g., CGPA, backlogs, branches).
- "branches": Eligible branches.
- "role": Job role.
- "recruitment_process": Description of the recruitment procedure.
- "application_deadline": Application deadline. Keep the original format as given in text.
- "form_link": The application form URL.
- "poc_name": Point of Contact name if mentioned, else "Not Specified".
- "poc_phone": Point of Contact phone number if mentioned, else "Not Specified".

Return only a valid JSON object. Do not include any markdown formatting.

Text: `
