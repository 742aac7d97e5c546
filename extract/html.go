// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package extract

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/poiesic/docmerge/core"
)

// HTMLExtractor walks an HTML intermediate and emits heading,
// paragraph and table blocks. Elements outside that set are descended
// into but contribute no blocks of their own.
type HTMLExtractor struct{}

func (HTMLExtractor) ExtractBlocks(raw Raw) ([]core.ContentBlock, error) {
	doc, err := html.Parse(strings.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML intermediate for %s: %w", raw.Path, err)
	}

	var blocks []core.ContentBlock
	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				if text := innerText(n); text != "" {
					blocks = append(blocks, core.ContentBlock{
						Kind:  core.BlockHeading,
						Level: headingLevel(n.Data),
						Text:  text,
					})
				}
				return nil
			case "p", "li":
				if text := innerText(n); text != "" {
					blocks = append(blocks, core.ContentBlock{
						Kind: core.BlockParagraph,
						Text: text,
					})
				}
				return nil
			case "table":
				markdown, err := htmltomarkdown.ConvertNode(n)
				if err != nil {
					return fmt.Errorf("failed to convert table in %s: %w", raw.Path, err)
				}
				if text := strings.TrimSpace(string(markdown)); text != "" {
					blocks = append(blocks, core.ContentBlock{
						Kind: core.BlockTable,
						Text: text,
					})
				}
				return nil
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(doc); err != nil {
		return nil, err
	}
	return blocks, nil
}

// headingLevel maps a tag name to its level, clamped to 1..6.
func headingLevel(tag string) int {
	level := int(tag[1] - '0')
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

func innerText(n *html.Node) string {
	var sb strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
