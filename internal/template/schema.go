/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package template

// JSON Schemas (draft-07) for the two on-disk document kinds. Validation
// happens before decoding so a malformed file is reported with field-level
// errors instead of a zero-valued struct.

const templateSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "journal page template",
  "type": "object",
  "required": ["width", "height", "leftMargin", "rightMargin", "baselines"],
  "properties": {
    "width": {"type": "number", "exclusiveMinimum": 0},
    "height": {"type": "number", "exclusiveMinimum": 0},
    "leftMargin": {"type": "number", "minimum": 0},
    "rightMargin": {"type": "number", "minimum": 0},
    "baselines": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "number", "exclusiveMinimum": 0}
    },
    "background": {"type": "string"},
    "fonts": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "body": {"type": "string"}
      }
    }
  }
}`

const requestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "journal page render request",
  "type": "object",
  "required": ["date"],
  "properties": {
    "date": {"type": "string"},
    "location": {"type": "string"},
    "locationColor": {
      "type": "object",
      "properties": {
        "r": {"type": "integer", "minimum": 0, "maximum": 255},
        "g": {"type": "integer", "minimum": 0, "maximum": 255},
        "b": {"type": "integer", "minimum": 0, "maximum": 255},
        "a": {"type": "integer", "minimum": 0, "maximum": 255}
      }
    },
    "body": {"type": "string"},
    "sourceWidth": {"type": "number", "minimum": 0},
    "photos": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["x", "y", "scale", "aspectRatio"],
        "properties": {
          "x": {"type": "number"},
          "y": {"type": "number"},
          "scale": {"type": "number"},
          "aspectRatio": {"type": "number"},
          "image": {"type": "string"}
        }
      }
    },
    "template": {"type": "string"}
  }
}`
