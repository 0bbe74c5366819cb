package practice

// Task descriptions fed into the question-generation template. The wording is
// what the learners' content is calibrated against, so keep edits deliberate.

const conversationDescription = `This exercise helps learners improve their English conversation skills. Provide a two-person dialogue with a missing response. The learner must complete the response naturally, ensuring it fits the context.

- It should contain between 1 to 4 exchanges (turns) between the two speakers.
- The conversation should be practical and realistic.
- The missing response should be a full sentence, not just a single word.
- The missing response can be the opening or a reply within the conversation.
- Provide a correct answer that sounds natural and relevant.
- Include a hint to guide the learner without giving the exact answer.
- The conversation can be about any subject related to the given topic.
- Adjust the difficulty level to Easy, Medium or Hard.
`

var speakingPrompts = map[string]string{
	"part1": `IELTS Speaking Part 1: Introduction and Interview

Create an IELTS Speaking Part 1 question set on the given topic. In this part:
- The examiner asks the candidate questions about familiar topics (e.g., home, family, work, studies, interests).
- This is a 4-5 minute informal conversation designed to help candidates relax and show their ability to talk about everyday topics.

Guidelines:
- Create a main question related to the given topic.
- Add 3-5 natural follow-up questions that an examiner might ask to extend the conversation.
- Questions should be simple, direct, and conversational.
- Follow-up questions should encourage candidates to expand on their initial responses.
- Questions should not require specialized knowledge.

Return a JSON object with:
1. A brief introduction to the task
2. The main question with its follow-up questions
3. Detailed hints that include suggested content, speaking strategies, tips for handling uncertainty, and common mistakes to avoid
4. A sample answer that demonstrates good speaking practices
`,
	"part2": `IELTS Speaking Part 2: Individual Long Turn (Cue Card)

Create an IELTS Speaking Part 2 cue card task on the given topic. In this part:
- The candidate receives a card with a topic and specific points to address.
- They have 1 minute to prepare and should speak for 1-2 minutes without interruption.
- After the long turn, the examiner may ask 1-2 brief follow-up questions.

Guidelines:
- Create a cue card with a clear speaking task on the given topic.
- Include 3-4 specific points that the candidate should address in their response.
- The cue card should begin with "Describe..." or "Talk about..." followed by the topic.
- Add 1-2 follow-up questions that might be asked after the long turn.
- The task should be challenging but accessible to candidates of various backgrounds.

Return a JSON object with:
1. A brief introduction explaining the Part 2 task format
2. The main cue card task with its bullet points, formatted exactly as it would appear on an IELTS cue card
3. 1-2 follow-up questions
4. Detailed hints covering response structure, preparation time use, strategies for extending answers, coherence tips and vocabulary suggestions
5. A sample answer that demonstrates good organization and language use
`,
}

var writingPrompts = map[string]string{
	"academic_task1": `IELTS Academic Writing Task 1

Create an IELTS Academic Writing Task 1 question on the given topic.

In this task:
- Test-takers are presented with a graph, table, chart, or diagram and asked to describe, summarize, or explain the information in their own words.
- They must write at least 150 words in about 20 minutes.
- They should not give opinions but focus on objective description and highlighting significant features.

Guidelines:
- Create a clear, realistic prompt with a visual data source (graph, chart, table, or diagram).
- Include a detailed description of what the visual data shows (since we can't include actual visuals).
- Provide helpful hints that guide the test-taker on how to approach the task.
- Include structure guidance and vocabulary suggestions.

Return a JSON object with:
1. Task description (the actual prompt)
2. A detailed description of the visual data source
3. A list of helpful hints for approaching the task
4. Structure guidance for organizing the response
5. Key vocabulary suggestions relevant to the task
`,
	"general_task1": `IELTS General Training Writing Task 1

Create an IELTS General Training Writing Task 1 question on the given topic.

In this task:
- Test-takers are asked to write a letter requesting information or explaining a situation.
- They must write at least 150 words in about 20 minutes.
- The letter can be formal, semi-formal, or informal depending on the context.

Guidelines:
- Create a realistic scenario requiring a letter (request, complaint, explanation, etc.).
- Clearly specify the recipient, purpose, and at least 3 content points to address.
- Indicate whether a formal, semi-formal, or informal letter is required.
- Provide helpful hints that guide the test-taker on how to approach the task.
- Include structure guidance and vocabulary suggestions for the appropriate register.

Return a JSON object with:
1. Task description (the actual prompt)
2. A list of helpful hints for approaching the task
3. Structure guidance for organizing the letter
4. Key vocabulary suggestions relevant to the letter type and topic
`,
	"task2": `IELTS Writing Task 2 (Academic & General Training)

Create an IELTS Writing Task 2 question on the given topic.

In this task:
- Test-takers are presented with a point of view, argument, or problem and asked to write an essay in response.
- They must write at least 250 words in about 40 minutes.
- They should present a position or argument with supporting evidence.

Guidelines:
- Create a clear, thought-provoking prompt that requires analysis and argumentation.
- For Academic: Make the prompt slightly more formal and abstract, potentially requiring more complex analysis.
- For General: Make the prompt relate more to everyday experiences and practical situations.
- The prompt should be appropriate for an international audience and not culturally biased.
- The task should be complex enough to allow for nuanced discussion but clear enough to respond to in 40 minutes.
- Provide helpful hints that guide the test-taker on how to approach different aspects of the argument.
- Include structure guidance and vocabulary suggestions.
- Remember to indicate whether this is for Academic or General Training in the metadata.

Return a JSON object with:
1. Task description (the actual prompt)
2. Word count and time allocation recommendations
3. A list of helpful hints for approaching the task
4. Structure guidance for organizing the essay
5. Key vocabulary suggestions relevant to the topic
6. Common mistakes to avoid
`,
}

const readingPrompt = `Reading Comprehension Practice

Create a reading comprehension practice on the given topic. The difficulty level should be Intermediate.

Guidelines:
- Create an engaging and informative reading passage on the specified topic.
- The passage should be moderate length (approximately 300-500 words).
- Develop 8 questions that test different aspects of reading comprehension.
- Include explanations for why each answer option is correct or incorrect.
- Question type can be multiple-choice (4 options), true/false (2 options), short answer (no more than three words, sentence completion or short answer questions).
- Multiple-choice questions account for half of the total questions, with the remaining questions being true/false and short answer.

Difficulty levels:
- Beginner: Simple vocabulary, clear structure, explicit information, shorter text
- Intermediate: More varied vocabulary, some inference required, more complex structure
- Advanced: Sophisticated vocabulary, requires significant inference, complex ideas

Content types:
- Article: Informative, factual content similar to magazine or educational articles
- News: Current events or news-style reporting on a topic
- Document: Professional document format like reports, memos, or instructions
- Story: Narrative content that tells a story or presents a scenario
Content type of passage: article
`

var listeningPrompts = map[string]string{
	"part2": `TOEIC Listening Part 2: Question-Response

Create a question-response item similar to TOEIC Part 2. In this part:
- The audio contains a single question or statement.
- The test-taker must choose the most appropriate response from three options.
- Only the question is spoken; the options are written.

Guidelines:
- Create a clear, natural-sounding question or statement in English on the topic given by user.
- For Part 2, the "question" is the audio transcript.
- Create a single question with three possible responses (A, B, C), only one of which correctly answers the audio question.
- Incorrect options should be plausible but clearly wrong when carefully analyzed.
- Questions should reflect real-life situations in professional or daily life contexts.
- Audio transcript should be 1-2 sentences (10-15 words maximum).

Return a JSON object with:
1. A brief context (leave empty for Part 2 or very minimal)
2. The audio transcript (the spoken question)
3. One question with three response options (A, B, C), marking which one is correct
4. A helpful hint for the learner
`,
	"part3": `TOEIC Listening Part 3: Conversations

Create a conversation scenario similar to TOEIC Part 3 on the topic given by user. In this part:
- The audio contains a conversation between 2-3 speakers.
- Each conversation is followed by 3 questions, each with 4 answer options (A, B, C, D).
- The questions test understanding of main ideas, details, inferences, and speaker purpose.

Guidelines:
- Create a natural workplace or everyday conversation between 2-3 speakers.
- Clearly label speakers (e.g., Man, Woman, Narrator).
- Conversation should be 30-45 seconds long (approximately 8-12 exchanges).
- Develop 3 questions that test different aspects of listening comprehension.
- Each question should have 4 answer options with only one correct answer.
- Incorrect options should be plausible but not accurate based on the conversation.

Return a JSON object with:
1. A brief context setting for the conversation
2. The full transcript of the conversation (this is the audio transcript)
3. Three questions about the conversation, each with four options (mark which one is correct)
4. A general hint to help learners understand the conversation
`,
	"part4": `TOEIC Listening Part 4: Short Talks

Create a short talk/monologue similar to TOEIC Part 4 on the topic given by user. In this part:
- The audio contains a monologue (announcement, advertisement, news report, or short talk).
- Each talk is followed by 3 questions, each with 4 answer options (A, B, C, D).
- The questions test understanding of main ideas, specific details, and implied information.

Guidelines:
- Create a coherent, natural-sounding monologue on a workplace or general topic.
- Talk should be 45-70 seconds long (approximately 150-200 words).
- Content should be informative and realistic (announcement, news, report, speech, etc.).
- Develop 3 questions that test different aspects of listening comprehension.
- Each question should have 4 answer options with only one correct answer.
- Incorrect options should be plausible but not accurate based on the talk.

Return a JSON object with:
1. A brief context setting for the talk
2. The full transcript of the talk (this is the audio transcript)
3. Three questions about the talk, each with four options (mark which one is correct)
4. A general hint to help learners understand the talk
`,
}

// Format instructions spell out the exact JSON shape for each schema, taking
// the place of an output parser's generated instructions.

const conversationFormat = `Respond with a JSON object of this exact shape:
{
  "metadata": {
    "practice_type": "conversation",
    "question_type": "fill_in",
    "topic": "<the given topic>",
    "conversation_context": "<specific context, e.g. 'Asking for Directions'>",
    "difficulty_level": "Easy" | "Medium" | "Hard"
  },
  "content": {
    "question_text": "<the dialogue with a blank to fill in>",
    "correct_answer": "<the correct answer to fill in the blank>",
    "hint": "<a hint to help the user answer>"
  }
}`

const speakingFormat = `Respond with a JSON object of this exact shape:
{
  "metadata": {
    "practice_type": "speaking",
    "question_type": "speaking",
    "ielts_part": "part1" | "part2",
    "topic": "<the given topic>"
  },
  "content": {
    "introduction": "<brief introduction to the speaking task>",
    "questions": [
      {
        "question_text": "<main speaking question>",
        "follow_up_questions": ["<follow-up question>", ...]
      }
    ],
    "hint": "<guidance on how to answer: tips, suggested content, structure, strategies>",
    "example_answer": "<a sample answer demonstrating good speaking practices>"
  }
}`

const writingFormat = `Respond with a JSON object of this exact shape:
{
  "metadata": {
    "practice_type": "writing",
    "ielts_type": "academic" | "general",
    "task_number": "task1" | "task2",
    "topic": "<the given topic>"
  },
  "content": {
    "task_description": "<the full writing task prompt>",
    "data_source": "<visual data description for Academic Task 1, else null>",
    "hints": ["<helpful hint>", ...],
    "structure_guide": "<guidance on how to structure the response>",
    "vocabulary_suggestions": ["<useful word or phrase>", ...]
  }
}`

const readingFormat = `Respond with a JSON object of this exact shape:
{
  "metadata": {
    "practice_type": "reading",
    "source_type": "article" | "document" | "story" | "news" | "user_provided",
    "topic": "<the given topic>",
    "difficulty_level": "Beginner" | "Intermediate" | "Advanced"
  },
  "content": {
    "title": "<title of the reading passage>",
    "passage": "<the full text of the reading passage>",
    "questions": [
      {
        "question_type": "multiple_choice" | "true_false" | "short_answer",
        "question_text": "<the question>",
        "options": [{"option": "<option text>", "is_correct": true|false}, ...],
        "sample_answer": "<only for short_answer, no more than three words, else null>",
        "explanation": "<explanation for the correct answer>"
      }
    ]
  }
}
multiple_choice requires exactly 4 options, true_false exactly 2, and exactly one option marked correct. short_answer has no options ("options": null) and requires sample_answer.`

const listeningFormat = `Respond with a JSON object of this exact shape:
{
  "metadata": {
    "practice_type": "listening",
    "question_type": "multiple_choice",
    "toeic_part": "part2" | "part3" | "part4",
    "topic": "<the given topic>",
    "difficulty_level": "Easy" | "Medium" | "Hard"
  },
  "content": {
    "context": "<brief description of the audio context, may be empty for part2>",
    "audio_transcript": "<the full transcript of what would be heard>",
    "questions": [
      {
        "question_text": "<the question about the audio>",
        "options": [{"option": "<option text>", "is_correct": true|false}, ...]
      }
    ],
    "hint": "<a general hint to help the learner>"
  }
}
part2 requires exactly 3 options per question; part3 and part4 require exactly 4. Exactly one option per question is marked correct.`
