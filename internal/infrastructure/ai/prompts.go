package ai

import (
	"fmt"
	"strings"
)

// PostSystemPrompt anchors the model persona for every provider.
const PostSystemPrompt = "You are a developer who writes engaging LinkedIn posts about your own coding work. You write in first person, keep a professional but friendly tone, and never invent work that is not in the commit summary."

const (
	postPromptTemplateEN = `Write a LinkedIn post about the development work described below.

Guidelines:
1. Open with a hook about what was built or fixed today.
2. Summarize the most interesting changes in plain language; mention concrete technologies when the commits name them.
3. Keep it between 200 and 300 words.
4. Use at most two or three emojis, and only where they feel natural.
5. Close with a short call to action inviting comments or connections.
6. Output only the post text, with no surrounding quotes or markdown fences.

Commit summary:
%s`

	postPromptTemplateES = `Escribí un post de LinkedIn sobre el trabajo de desarrollo descripto abajo.

Pautas:
1. Arrancá con un gancho sobre lo que se construyó o arregló hoy.
2. Resumí los cambios más interesantes en lenguaje simple; nombrá tecnologías concretas cuando los commits las mencionen.
3. Mantenelo entre 200 y 300 palabras.
4. Usá como máximo dos o tres emojis, y solo donde queden naturales.
5. Cerrá con un llamado a la acción corto invitando a comentar o conectar.
6. Devolvé solo el texto del post, sin comillas ni bloques de markdown.

Resumen de commits:
%s`
)

// GetPostPromptTemplate returns the post prompt for the given locale,
// falling back to English.
func GetPostPromptTemplate(locale string) string {
	if strings.HasPrefix(locale, "es") {
		return postPromptTemplateES
	}
	return postPromptTemplateEN
}

// BuildPostPrompt renders the user prompt for one commit summary.
func BuildPostPrompt(locale, commitSummary string) string {
	return fmt.Sprintf(GetPostPromptTemplate(locale), commitSummary)
}

// maxVisualExcerptChars bounds how much of the post text seeds the
// image prompt; the full post adds nothing visual past the opening.
const maxVisualExcerptChars = 300

const visualPromptTemplate = `A clean, modern illustration for a software development social media post. Abstract representation of coding and software craftsmanship: stylized code editors, terminal windows, and flowing data. Vibrant but professional color palette, flat design, no text or letters in the image.

The post it accompanies begins: %q`

// BuildVisualPrompt derives an image-generation prompt from the post
// text, embedding only its opening excerpt.
func BuildVisualPrompt(postText string) string {
	excerpt := postText
	if len(excerpt) > maxVisualExcerptChars {
		excerpt = excerpt[:maxVisualExcerptChars]
	}
	return fmt.Sprintf(visualPromptTemplate, excerpt)
}
