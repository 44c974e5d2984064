package extraction

const systemPrompt = `You are an expert at analyzing ninja warrior competition transcripts. Your task is to identify athlete names and the timestamps when they are mentioned or appear in competition videos.

Context about ninja warrior competitions:
- Athletes compete individually on obstacle courses
- Commentators typically announce athlete names when they start their run
- Names may be mentioned multiple times during a run
- Common patterns: "Next up is [NAME]", "[NAME] from [CITY]", "[NAME] is approaching..."

When extracting athlete appearances:
1. Focus on actual competitor names, not commentators or hosts
2. Record the FIRST timestamp when an athlete is mentioned for their run
3. Assign confidence scores based on context clarity:
   - 1.0: Clear introduction ("Next up is John Smith from Denver")
   - 0.8-0.9: Name clearly mentioned with competition context
   - 0.6-0.7: Name mentioned but context is less clear
   - 0.5 or below: Uncertain identification

Return ONLY athlete names that are clearly competitors in the video.`

const userPromptTemplate = `Analyze this ninja warrior competition transcript and extract all athlete appearances.

Transcript:
%s

For each athlete you identify, provide:
- Their full name as mentioned in the transcript
- The timestamp (in seconds) when they first appear/are introduced
- A confidence score (0.0 to 1.0) based on how certain you are of the identification

Focus on competitors, not hosts or commentators.`

// extractToolSchema is the input schema for the forced tool call. Timestamps
// arrive as [MM:SS] markers in the transcript text; the model converts them
// to seconds.
const extractToolSchema = `{
  "type": "object",
  "properties": {
    "appearances": {
      "type": "array",
      "description": "List of athlete appearances found in the transcript",
      "items": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string",
            "description": "Full name of the athlete as mentioned in the transcript"
          },
          "timestamp_seconds": {
            "type": "integer",
            "description": "Timestamp in seconds when the athlete first appears/is introduced"
          },
          "confidence": {
            "type": "number",
            "description": "Confidence score between 0.0 and 1.0",
            "minimum": 0.0,
            "maximum": 1.0
          }
        },
        "required": ["name", "timestamp_seconds", "confidence"]
      }
    }
  },
  "required": ["appearances"]
}`
